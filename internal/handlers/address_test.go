package handlers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeAddress(t *testing.T, raw string) addressPayload {
	t.Helper()
	var addr addressPayload
	require.NoError(t, json.Unmarshal([]byte(raw), &addr))
	return addr
}

func TestRequiredAddressComplete(t *testing.T) {
	addr := decodeAddress(t, `{
		"shipping": {"street": "MG Road", "city": "Mumbai", "pincode": "400001"},
		"billing":  {"street": "Park St", "city": "Kolkata", "pincode": "700016"}
	}`)

	out, msg := requiredAddress(addr)
	require.Empty(t, msg)
	assert.Equal(t, "MG Road", out.Shipping.Street)
	assert.Equal(t, "Kolkata", out.Billing.City)
	assert.Equal(t, "700016", out.Billing.Pincode)
}

func TestRequiredAddressMissingLeaf(t *testing.T) {
	addr := decodeAddress(t, `{
		"shipping": {"street": "MG Road", "city": "Mumbai"},
		"billing":  {"street": "Park St", "city": "Kolkata", "pincode": "700016"}
	}`)

	_, msg := requiredAddress(addr)
	assert.Equal(t, "Shipping address's pincode should be there", msg)
}

func TestRequiredAddressBlankLeaf(t *testing.T) {
	addr := decodeAddress(t, `{
		"shipping": {"street": "MG Road", "city": "Mumbai", "pincode": "400001"},
		"billing":  {"street": "", "city": "Kolkata", "pincode": "700016"}
	}`)

	_, msg := requiredAddress(addr)
	assert.Equal(t, "Billing address's street is required", msg)
}

func TestRequiredAddressAbsent(t *testing.T) {
	_, msg := requiredAddress(addressPayload{})
	assert.Equal(t, "Address is required", msg)
}

func TestAddressUpdatesOnlySuppliedLeaves(t *testing.T) {
	addr := decodeAddress(t, `{"shipping": {"city": "Chennai"}}`)

	set, msg := addressUpdates(addr)
	require.Empty(t, msg)
	assert.Equal(t, map[string]interface{}{"address.shipping.city": "Chennai"}, map[string]interface{}(set))
}

func TestAddressUpdatesBothParts(t *testing.T) {
	addr := decodeAddress(t, `{
		"shipping": {"street": "New Street", "pincode": "600001"},
		"billing":  {"city": "Pune"}
	}`)

	set, msg := addressUpdates(addr)
	require.Empty(t, msg)
	assert.Len(t, set, 3)
	assert.Equal(t, "New Street", set["address.shipping.street"])
	assert.Equal(t, "600001", set["address.shipping.pincode"])
	assert.Equal(t, "Pune", set["address.billing.city"])
	assert.NotContains(t, set, "address.shipping.city")
	assert.NotContains(t, set, "address.billing.street")
}

func TestAddressUpdatesRejectsBlankLeaf(t *testing.T) {
	addr := decodeAddress(t, `{"shipping": {"street": ""}}`)

	_, msg := addressUpdates(addr)
	assert.Equal(t, "Please provide shipping address's street", msg)
}

func TestAddressUpdatesRejectsNonStringLeaf(t *testing.T) {
	addr := decodeAddress(t, `{"billing": {"city": 0}}`)

	_, msg := addressUpdates(addr)
	assert.Equal(t, "Please provide billing address's city", msg)
}

func TestAddressUpdatesRejectsBadPincode(t *testing.T) {
	for _, pin := range []string{"012345", "40000", "4000011"} {
		addr := decodeAddress(t, `{"shipping": {"pincode": "`+pin+`"}}`)

		_, msg := addressUpdates(addr)
		assert.Equal(t, "Please provide a valid pincode to update", msg, pin)
	}
}

func TestAddressUpdatesRejectsEmptyObject(t *testing.T) {
	addr := decodeAddress(t, `{}`)

	_, msg := addressUpdates(addr)
	assert.Equal(t, "Please add shipping or billing address to update", msg)
}

func TestAddressUpdatesRejectsMalformedAddress(t *testing.T) {
	for _, raw := range []string{`0`, `""`, `null`, `[1]`} {
		addr := decodeAddress(t, raw)

		_, msg := addressUpdates(addr)
		assert.Equal(t, "Please add shipping or billing address to update", msg, raw)
	}
}

func TestAddressUpdatesRejectsMalformedPart(t *testing.T) {
	addr := decodeAddress(t, `{"shipping": 0}`)

	_, msg := addressUpdates(addr)
	assert.Equal(t, "Please add street, city or pincode to update for shipping", msg)
}

func TestAddressUpdatesRejectsEmptyPart(t *testing.T) {
	addr := decodeAddress(t, `{"billing": {}}`)

	_, msg := addressUpdates(addr)
	assert.Equal(t, "Please add street, city or pincode for billing to update", msg)
}
