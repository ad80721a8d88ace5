// Package categorize maps receipt content to a spending category through a
// fixed, priority-ordered keyword cascade. Categories share vocabulary on
// purpose ("restaurant" appears on hotel bills, "station" on fuel receipts),
// so precedence is encoded in the rule order, not inferred.
package categorize

import (
	"fmt"
	"strings"
)

// Confidence is the coarse reliability tier of a categorization, distinct
// from the OCR engine's numeric token confidence.
type Confidence string

const (
	ConfidenceHigh Confidence = "high"
	ConfidenceLow  Confidence = "low"
)

// Result names the assigned category with its confidence tier and a
// human-readable justification.
type Result struct {
	Category   string     `json:"category"`
	Confidence Confidence `json:"confidence"`
	Reason     string     `json:"reason"`
}

// CategoryOther is the fallback category when no rule matches.
const CategoryOther = "Other"

type rule struct {
	category string
	label    string
	keywords []string
}

// rules is evaluated strictly in order; the first rule with any keyword
// present wins. Food & Dining outranks Accommodation so that "restaurant"
// resolves to food even on a receipt that also mentions a hotel.
var rules = []rule{
	{
		category: "Food & Dining",
		label:    "food",
		keywords: []string{
			"restaurant", "cafe", "coffee", "tea", "pizza", "burger", "biryani", "meal",
			"dining", "eat", "kitchen", "food", "swiggy", "zomato", "dominos", "mcdonalds",
			"kfc", "subway", "starbucks", "lunch", "dinner", "breakfast", "snack",
			"bakery", "diner", "bistro", "eatery", "canteen", "dhaba", "tiffin", "sweet",
			"juice", "lassi", "chai", "beverage", "ice cream", "dessert",
		},
	},
	{
		category: "Accommodation",
		label:    "accommodation",
		keywords: []string{
			"hotel", "resort", "lodge", "guest house", "homestay", "stay", "room rent", "booking hotel",
			"check-in", "night", "accommodation", "inn", "motel", "suite", "reservation",
			"hospitality", "rooms", "nights", "check in", "check out", "hotel bill",
			"room service", "room charge", "room rate", "lodging", "airbnb",
		},
	},
	{
		category: "Bills & Utilities",
		label:    "electricity",
		keywords: []string{
			"electricity bill", "power bill", "electric bill", "energy bill",
			"electricity", "power", "electric", "energy charge", "power supply",
			"bses", "tata power", "adani power", "reliance energy", "torrent power",
			"electricity board", "power board", "discom", "electric company",
			"power distribution", "electrical services", "power utilities",
			"energy services", "kwh", "unit consumption", "meter reading",
			"transmission charge", "distribution charge", "grid", "transformer",
		},
	},
	{
		category: "Transportation",
		label:    "transport",
		keywords: []string{
			"cab", "taxi", "auto", "bus", "train", "metro", "flight", "airline", "air ticket",
			"uber", "ola", "journey", "railway", "airport", "petrol", "diesel",
			"fuel", "parking", "toll", "transport", "ride", "trip", "indigo", "spicejet",
			"air india", "railways", "irctc", "station", "platform",
		},
	},
	{
		category: "Shopping & Clothes",
		label:    "shopping",
		keywords: []string{
			"fashion", "clothing", "shirt", "dress", "shoes", "bag", "accessories",
			"myntra", "flipkart", "amazon", "reliance trends", "lifestyle", "westside",
			"mall", "shop", "store", "retail", "apparel", "garment", "jewelry", "watch",
			"sunglasses", "belt", "wallet", "footwear", "handbag",
		},
	},
	{
		category: "Healthcare",
		label:    "healthcare",
		keywords: []string{
			"medical", "hospital", "pharmacy", "medicine", "doctor", "clinic", "health",
			"apollo", "fortis", "max", "medanta", "cipla", "chemist", "prescription",
			"dental", "dentist", "lab", "pathology", "diagnostic", "scan", "x-ray",
			"vaccination", "injection", "surgery", "treatment", "consultation", "therapy",
		},
	},
	{
		category: "Groceries & Household",
		label:    "grocery",
		keywords: []string{
			"grocery", "supermarket", "mart", "vegetables", "fruits", "milk", "bread",
			"big bazaar", "dmart", "reliance fresh", "spencer", "more", "star bazaar",
			"household", "cleaning", "detergent", "soap", "shampoo", "toothpaste",
			"tissue", "toilet paper", "kitchen", "utensils", "provisions",
		},
	},
	{
		category: "Mobile & Internet",
		label:    "mobile/internet",
		keywords: []string{
			"mobile", "internet", "wifi", "broadband", "data", "airtel", "jio",
			"vodafone", "bsnl", "recharge", "telecom", "sim", "phone", "prepaid",
			"postpaid", "network", "cellular", "smartphone",
		},
	},
	{
		category: "Entertainment",
		label:    "entertainment",
		keywords: []string{
			"movie", "cinema", "theatre", "entertainment", "games", "sports",
			"pvr", "inox", "book my show", "netflix", "amazon prime", "hotstar",
			"spotify", "youtube", "gaming", "concert", "show", "event", "movie ticket",
		},
	},
	{
		category: "Office Expense",
		label:    "office",
		keywords: []string{
			"stationery", "office supplies", "pen", "paper", "printer", "toner",
			"office", "workspace", "co-working",
		},
	},
	{
		category: "Bills & Utilities",
		label:    "utility",
		keywords: []string{
			"water bill", "gas bill", "water supply bill", "municipal water",
			"water corporation", "gas corporation", "municipal corporation bill",
			"water board", "gas company", "lpg bill", "pipeline gas",
			"sewage bill", "drainage bill", "sanitation bill", "waste management",
			"municipal tax", "property tax bill", "water tank cleaning",
		},
	},
	{
		category: "Travel & Vacation",
		label:    "travel",
		keywords: []string{
			"vacation", "holiday", "tour", "package", "itinerary", "sightseeing",
			"visa", "passport", "travel agent", "travel insurance", "makemytrip",
			"cleartrip", "goibibo", "yatra", "booking.com", "agoda", "expedia",
			"travel booking",
		},
	},
	{
		category: "Education & Courses",
		label:    "education",
		keywords: []string{
			"education", "course", "school", "college", "university", "tuition",
			"coaching", "training", "workshop", "seminar", "certification", "exam",
			"admission", "byju", "unacademy", "vedantu", "coursera", "udemy",
			"educational", "learning", "study",
		},
	},
	{
		category: "Home & Family",
		label:    "home/family",
		keywords: []string{
			"home", "furniture", "appliance", "repair", "maintenance", "renovation",
			"interior", "decoration", "painting", "plumbing", "electrical work",
			"carpenter", "maid", "cook", "babysitter", "family", "child care",
			"ikea", "pepperfry", "urban ladder", "godrej",
		},
	},
	{
		category: "Personal Care",
		label:    "personal care",
		keywords: []string{
			"salon", "spa", "beauty", "haircut", "massage", "facial", "manicure",
			"pedicure", "cosmetics", "makeup", "skincare", "grooming", "barber",
			"parlour", "wellness", "fitness", "gym", "yoga", "beauty salon",
			"hair salon", "nail salon",
		},
	},
	{
		category: "Gifts & Festivals",
		label:    "gifts/festival",
		keywords: []string{
			"gift", "festival", "celebration", "birthday", "anniversary", "wedding",
			"diwali", "christmas", "eid", "holi", "rakhi", "valentine", "party",
			"decoration", "flowers", "greeting card", "present", "occasion",
			"gift shop", "flower shop", "birthday gift", "anniversary gift",
		},
	},
	{
		category: "EMI & Loans",
		label:    "EMI/loan",
		keywords: []string{
			"emi", "loan", "interest", "installment", "credit", "debt", "repayment",
			"mortgage", "finance", "bank", "hdfc", "icici", "sbi", "axis", "kotak",
			"bajaj finserv", "lending", "borrowing",
		},
	},
	{
		category: "Investments & SIP",
		label:    "investment",
		keywords: []string{
			"investment", "sip", "mutual fund", "stock", "share", "trading",
			"portfolio", "dividend", "returns", "zerodha", "groww", "upstox",
			"paytm money", "kuvera", "etmoney", "systematic investment",
			"equity", "bond", "fd", "rd", "ppf", "nps",
		},
	},
}

// Categorize assigns exactly one category from the receipt text and merchant
// name. Matching is case-insensitive substring containment over the union of
// both strings; the first rule in priority order with any keyword present
// wins with high confidence. With no match it falls back to Other with low
// confidence. It never fails.
func Categorize(text, merchant string) Result {
	textLower := strings.ToLower(text)
	merchantLower := strings.ToLower(merchant)

	for _, r := range rules {
		for _, kw := range r.keywords {
			inMerchant := strings.Contains(merchantLower, kw)
			if !inMerchant && !strings.Contains(textLower, kw) {
				continue
			}
			where := "receipt text"
			if inMerchant {
				where = "merchant name"
			}
			return Result{
				Category:   r.category,
				Confidence: ConfidenceHigh,
				Reason:     fmt.Sprintf("Found %s keyword '%s' in %s", r.label, kw, where),
			}
		}
	}

	return Result{
		Category:   CategoryOther,
		Confidence: ConfidenceLow,
		Reason:     "Could not determine category from available information - no matching keywords found",
	}
}
