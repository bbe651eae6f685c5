package models

import (
	"sort"
	"strings"
)

// Definition describes one entity type of the admin console.
type Definition struct {
	// Name is the registry key used on the command line.
	Name string
	// Path is the resource segment under the API base URL.
	Path string
	// Title starts success messages: "<Title> created successfully!".
	Title string
	// Noun is used in error and confirmation messages.
	Noun string
	// Plural is used in list error messages.
	Plural string
	// Required fields must be non-blank before save.
	Required []string
	// Defaults seed every fresh draft.
	Defaults Record
	// Columns are shown when listing.
	Columns []string
}

// NewDraft returns a fresh draft seeded with the defaults.
func (d Definition) NewDraft() Record {
	if d.Defaults == nil {
		return Record{}
	}
	return d.Defaults.Clone()
}

// Missing returns the required fields that are blank in r, in declaration order.
func (d Definition) Missing(r Record) []string {
	var out []string
	for _, f := range d.Required {
		if r.IsBlank(f) {
			out = append(out, f)
		}
	}
	return out
}

func active() Record { return Record{"status": "active"} }

var definitions = []Definition{
	{
		Name: "user", Path: "user", Title: "User", Noun: "user", Plural: "users",
		Required: []string{"name", "email"},
		Columns:  []string{"id", "name", "email", "phone_number"},
	},
	{
		Name: "customer", Path: "customer", Title: "Customer", Noun: "customer", Plural: "customers",
		Required: []string{"name", "email"},
		Defaults: active(),
		Columns:  []string{"id", "name", "email", "phone_number", "status"},
	},
	{
		// Account-style customer form of the insurance console; it sets the
		// login password and has no status default.
		Name: "insurancecustomer", Path: "customer", Title: "Customer", Noun: "customer", Plural: "customers",
		Required: []string{"name", "email", "password"},
		Columns:  []string{"id", "name", "email", "phone_number"},
	},
	{
		Name: "agent", Path: "agent", Title: "Agent", Noun: "agent", Plural: "agents",
		Required: []string{"name", "email", "referral_code", "commission_percentage"},
		Columns:  []string{"id", "name", "email", "referral_code", "commission_percentage"},
	},
	{
		Name: "plan", Path: "plan", Title: "Plan", Noun: "plan", Plural: "plans",
		Required: []string{"name", "price", "coverage_amount", "duration_months"},
		Columns:  []string{"id", "name", "price", "coverage_amount", "duration_months"},
	},
	{
		Name: "policy", Path: "policy", Title: "Policy", Noun: "policy", Plural: "policies",
		Required: []string{"policy_number", "plan_id", "insurance_company_id", "insurance_type_id", "start_date", "end_date"},
		Columns:  []string{"id", "policy_number", "plan_id", "start_date", "end_date"},
	},
	{
		Name: "product", Path: "products", Title: "Product", Noun: "product", Plural: "products",
		Required: []string{"name", "sku", "price"},
		Defaults: active(),
		Columns:  []string{"id", "name", "sku", "price", "status"},
	},
	{
		Name: "insurancetype", Path: "insurancetype", Title: "Insurance type", Noun: "type", Plural: "types",
		Required: []string{"name"},
		Columns:  []string{"id", "name", "description"},
	},
	{
		Name: "insurancecompany", Path: "insurancecompany", Title: "Company", Noun: "company", Plural: "companies",
		Required: []string{"name", "email"},
		Columns:  []string{"id", "name", "email", "phone_number"},
	},
	{
		Name: "customerpolicy", Path: "customerpolicy", Title: "Mapping", Noun: "mapping", Plural: "mappings",
		Required: []string{"customer_id", "policy_id"},
		Defaults: active(),
		Columns:  []string{"id", "customer_id", "policy_id", "status"},
	},
}

// Lookup finds a definition by name, case-insensitively.
func Lookup(name string) (Definition, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, d := range definitions {
		if d.Name == name {
			return d, true
		}
	}
	return Definition{}, false
}

// Definitions returns all entity definitions sorted by name.
func Definitions() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
