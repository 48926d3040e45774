package handlers

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/shariqrahman/Products-Management/internal/models"
	"github.com/shariqrahman/Products-Management/internal/validation"
)

// requiredAddress validates the full address demanded at registration: both
// parts with all six leaves non-blank. It returns the message of the first
// failing leaf, walking shipping then billing in street/city/pincode order.
func requiredAddress(addr addressPayload) (models.Address, string) {
	var out models.Address

	if !addr.present || addr.malformed {
		return out, "Address is required"
	}

	shipping, msg := requiredAddressPart("Shipping", addr.Shipping)
	if msg != "" {
		return out, msg
	}
	billing, msg := requiredAddressPart("Billing", addr.Billing)
	if msg != "" {
		return out, msg
	}

	out.Shipping = shipping
	out.Billing = billing
	return out, ""
}

func requiredAddressPart(label string, part addressPartPayload) (models.AddressPart, string) {
	var out models.AddressPart

	leaves := []struct {
		name  string
		field validation.Field
		dst   *string
	}{
		{"street", part.Street, &out.Street},
		{"city", part.City, &out.City},
		{"pincode", part.Pincode, &out.Pincode},
	}
	for _, leaf := range leaves {
		if !leaf.field.Present() {
			return out, label + " address's " + leaf.name + " should be there"
		}
		if !leaf.field.Usable() {
			return out, label + " address's " + leaf.name + " is required"
		}
		*leaf.dst = leaf.field.Value()
	}
	return out, ""
}

// addressUpdates validates the partial address supplied on update and
// returns the dotted-key entries for the leaves that were actually sent.
// Leaves that were not mentioned produce no entry, so the stored values
// survive the $set. A non-empty message means the address failed validation
// and nothing should be written.
func addressUpdates(addr addressPayload) (bson.M, string) {
	if addr.malformed {
		return nil, "Please add shipping or billing address to update"
	}
	if !addr.Shipping.present && !addr.Billing.present {
		return nil, "Please add shipping or billing address to update"
	}

	set := bson.M{}
	if msg := addressPartUpdates(set, "shipping", addr.Shipping); msg != "" {
		return nil, msg
	}
	if msg := addressPartUpdates(set, "billing", addr.Billing); msg != "" {
		return nil, msg
	}
	return set, ""
}

func addressPartUpdates(set bson.M, name string, part addressPartPayload) string {
	if !part.present {
		return ""
	}
	if part.malformed {
		return "Please add street, city or pincode to update for " + name
	}
	if !part.hasLeaves() {
		return "Please add street, city or pincode for " + name + " to update"
	}

	if part.Street.Present() {
		if !part.Street.Usable() {
			return "Please provide " + name + " address's street"
		}
		set["address."+name+".street"] = part.Street.Value()
	}
	if part.City.Present() {
		if !part.City.Usable() {
			return "Please provide " + name + " address's city"
		}
		set["address."+name+".city"] = part.City.Value()
	}
	if part.Pincode.Present() {
		if !part.Pincode.Usable() {
			return "Please provide " + name + " address's pincode"
		}
		if !validation.IsValidPincode(part.Pincode.Value()) {
			return "Please provide a valid pincode to update"
		}
		set["address."+name+".pincode"] = part.Pincode.Value()
	}
	return ""
}
