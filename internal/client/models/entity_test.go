package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	d, ok := Lookup(" Customer ")
	require.True(t, ok)
	assert.Equal(t, "customer", d.Path)

	d, ok = Lookup("product")
	require.True(t, ok)
	assert.Equal(t, "products", d.Path)

	_, ok = Lookup("claim")
	assert.False(t, ok)
}

func TestDefinitions_AllEntitiesSorted(t *testing.T) {
	var names []string
	for _, d := range Definitions() {
		names = append(names, d.Name)
		assert.NotEmpty(t, d.Required, d.Name)
		assert.NotEmpty(t, d.Title, d.Name)
	}
	assert.Equal(t, []string{
		"agent", "customer", "customerpolicy", "insurancecompany", "insurancecustomer",
		"insurancetype", "plan", "policy", "product", "user",
	}, names)
}

func TestDefinition_NewDraft(t *testing.T) {
	for _, name := range []string{"customer", "product", "customerpolicy"} {
		d, _ := Lookup(name)
		assert.Equal(t, Record{"status": "active"}, d.NewDraft(), name)
	}

	d, _ := Lookup("plan")
	assert.Equal(t, Record{}, d.NewDraft())

	c, _ := Lookup("customer")
	draft := c.NewDraft()
	draft["status"] = "inactive"
	assert.Equal(t, Record{"status": "active"}, c.NewDraft(), "drafts must not share defaults")
}

func TestDefinition_InsuranceCustomerNeedsPassword(t *testing.T) {
	d, ok := Lookup("insurancecustomer")
	require.True(t, ok)
	assert.Equal(t, "customer", d.Path)
	assert.Equal(t, Record{}, d.NewDraft())
	assert.Equal(t, []string{"password"}, d.Missing(Record{"name": "Asha", "email": "a@x.com"}))
}

func TestDefinition_Missing(t *testing.T) {
	d, _ := Lookup("policy")

	missing := d.Missing(Record{"policy_number": "P-1", "plan_id": 3, "start_date": " "})
	assert.Equal(t, []string{"insurance_company_id", "insurance_type_id", "start_date", "end_date"}, missing)

	assert.Empty(t, d.Missing(Record{
		"policy_number": "P-1", "plan_id": 3, "insurance_company_id": "2",
		"insurance_type_id": "1", "start_date": "2024-01-01", "end_date": "2025-01-01",
	}))
}
