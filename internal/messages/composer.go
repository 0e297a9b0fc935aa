package messages

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultCompanyName is the signature used when the tenant does not supply one.
const DefaultCompanyName = "Inventory Management Team"

// Template placeholders recognized by Render.
const (
	PlaceholderSupplierName = "{supplier_name}"
	PlaceholderItemsList    = "{items_list}"
	PlaceholderCompanyName  = "{company_name}"
)

// Item is one product line in a reorder message.
type Item struct {
	Name         string `json:"name" validate:"required"`
	Quantity     int    `json:"quantity" validate:"required,gt=0"`
	CurrentStock int    `json:"current_stock" validate:"gte=0"`
}

// Render substitutes the template placeholders and returns the final message.
// Rendering an already-rendered message is a no-op because the output carries
// no placeholders.
func Render(body, supplierName, companyName string, items []Item) string {
	if companyName == "" {
		companyName = DefaultCompanyName
	}
	message := strings.ReplaceAll(body, PlaceholderSupplierName, supplierName)
	message = strings.ReplaceAll(message, PlaceholderItemsList, FormatItems(items))
	message = strings.ReplaceAll(message, PlaceholderCompanyName, companyName)
	return message
}

// FormatItems renders the bullet list substituted for {items_list}.
func FormatItems(items []Item) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("• %s: %d units (Current stock: %d)", item.Name, item.Quantity, item.CurrentStock))
	}
	return strings.Join(lines, "\n")
}

// BuildDeepLink produces a wa.me link that opens a chat with the contact and
// the message prefilled. The contact keeps digits only; the text is
// percent-encoded with %20 for spaces.
func BuildDeepLink(contactNumber, message string) string {
	var digits strings.Builder
	for _, r := range contactNumber {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", digits.String(), encoded)
}
