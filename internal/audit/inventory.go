package audit

import (
	"encoding/json"
	"fmt"
	"os"
)

const inventoryReadErrorTemplateConstant = "unable to load inventory %s: %w"

// Inventory selects the audit scope: the approved branding tokens and the
// repositories to scan, grouped by free-form category name.
type Inventory struct {
	Branding map[string]string   `json:"branding"`
	Repos    map[string][]string `json:"repos"`
}

// LoadInventory reads and parses the inventory document. An unreadable or
// malformed inventory is unrecoverable: there is no meaningful audit without
// it, so the error propagates to the caller.
func LoadInventory(inventoryPath string) (Inventory, error) {
	inventoryContents, readError := os.ReadFile(inventoryPath)
	if readError != nil {
		return Inventory{}, fmt.Errorf(inventoryReadErrorTemplateConstant, inventoryPath, readError)
	}

	var inventory Inventory
	if unmarshalError := json.Unmarshal(inventoryContents, &inventory); unmarshalError != nil {
		return Inventory{}, fmt.Errorf(inventoryReadErrorTemplateConstant, inventoryPath, unmarshalError)
	}

	return inventory, nil
}
