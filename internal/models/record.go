package models

// ProductRecord is one catalog listing as extracted from a product block.
// Every field is optional: nil means the block did not carry that piece of
// information. A record is built once by the parser and never mutated.
type ProductRecord struct {
	Brand           *string `json:"Brand"`
	ProductName     *string `json:"Product_Name"`
	RetailPrice     *string `json:"Retail_Price"`
	DiscountedPrice *string `json:"Discounted_Price"`
	Discount        *string `json:"Discount"`
}

// CSVHeader is the fixed column order of the table output.
var CSVHeader = []string{"Brand", "Product_Name", "Retail_Price", "Discounted_Price", "Discount"}

// CSVRow serializes the record in CSVHeader order, absent fields as empty cells.
func (r ProductRecord) CSVRow() []string {
	return []string{
		orEmpty(r.Brand),
		orEmpty(r.ProductName),
		orEmpty(r.RetailPrice),
		orEmpty(r.DiscountedPrice),
		orEmpty(r.Discount),
	}
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
