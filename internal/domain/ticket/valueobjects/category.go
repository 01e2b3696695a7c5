package valueobjects

import "fmt"

// Category classifies a support ticket by the kind of problem reported.
type Category string

const (
	CategoryNetwork  Category = "network"
	CategoryHardware Category = "hardware"
	CategorySoftware Category = "software"
	CategoryAccount  Category = "account"
	CategoryOther    Category = "other"
)

func NewCategory(value string) (Category, error) {
	c := Category(value)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %s", value)
	}
	return c, nil
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryNetwork, CategoryHardware, CategorySoftware, CategoryAccount, CategoryOther:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

func AllCategories() []Category {
	return []Category{CategoryNetwork, CategoryHardware, CategorySoftware, CategoryAccount, CategoryOther}
}
