package models

// Category is one of the fixed transaction category labels. Each category
// belongs to exactly one transaction type group, so the type of a
// transaction is derivable from its category.
type Category string

// Income categories.
const (
	CategorySalary      Category = "salary"
	CategoryFreelance   Category = "freelance"
	CategoryInvestments Category = "investments"
	CategoryOtherIncome Category = "other_income"
)

// Expense categories.
const (
	CategoryRent           Category = "rent"
	CategoryGroceries      Category = "groceries"
	CategoryUtilities      Category = "utilities"
	CategoryEntertainment  Category = "entertainment"
	CategoryTransportation Category = "transportation"
	CategoryDining         Category = "dining"
	CategoryShopping       Category = "shopping"
	CategoryHealthcare     Category = "healthcare"
	CategoryEducation      Category = "education"
	CategoryTravel         Category = "travel"
	CategoryPersonal       Category = "personal"
	CategoryOtherExpense   Category = "other_expense"
)

// categoryTypes maps every valid category to its transaction type group.
var categoryTypes = map[Category]TransactionType{
	CategorySalary:      TransactionTypeIncome,
	CategoryFreelance:   TransactionTypeIncome,
	CategoryInvestments: TransactionTypeIncome,
	CategoryOtherIncome: TransactionTypeIncome,

	CategoryRent:           TransactionTypeExpense,
	CategoryGroceries:      TransactionTypeExpense,
	CategoryUtilities:      TransactionTypeExpense,
	CategoryEntertainment:  TransactionTypeExpense,
	CategoryTransportation: TransactionTypeExpense,
	CategoryDining:         TransactionTypeExpense,
	CategoryShopping:       TransactionTypeExpense,
	CategoryHealthcare:     TransactionTypeExpense,
	CategoryEducation:      TransactionTypeExpense,
	CategoryTravel:         TransactionTypeExpense,
	CategoryPersonal:       TransactionTypeExpense,
	CategoryOtherExpense:   TransactionTypeExpense,
}

// Valid reports whether c is one of the fixed category labels.
func (c Category) Valid() bool {
	_, ok := categoryTypes[c]
	return ok
}

// Type returns the transaction type group the category belongs to.
// Returns an empty TransactionType for unknown categories.
func (c Category) Type() TransactionType {
	return categoryTypes[c]
}

// Categories returns all valid categories belonging to the given type.
func Categories(t TransactionType) []Category {
	var out []Category
	for c, ct := range categoryTypes {
		if ct == t {
			out = append(out, c)
		}
	}
	return out
}
