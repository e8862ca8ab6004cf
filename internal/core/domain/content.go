package domain

// ContentEntry is one localized marketing text field for a country, keyed by
// a name from the fixed vocabulary below. Values may carry {%field%} tokens
// and the <red>...</red> marker pair for highlighted text.
type ContentEntry struct {
	CountryID string `json:"countryID"` // FK -> Country.countryID (Not Null)
	FieldKey  string `json:"fieldKey"`
	Text      string `json:"text"`
	AuditFields
}

// PlaceholderKind says where a placeholder field takes its value from.
type PlaceholderKind string

const (
	// PlaceholderReplaceable fields are filled from same-named values in the quote request.
	PlaceholderReplaceable PlaceholderKind = "REPLACEABLE"
	// PlaceholderStatic fields carry a fixed per-country value set by an admin.
	PlaceholderStatic PlaceholderKind = "STATIC"
)

// PlaceholderField is one admin-configured placeholder name a country permits
// in its content bodies. Static fields also carry the substituted value.
type PlaceholderField struct {
	CountryID   string          `json:"countryID"`
	Name        string          `json:"name"`
	Kind        PlaceholderKind `json:"kind"`
	StaticValue string          `json:"staticValue,omitempty"`
	AuditFields
}

// Content field key vocabulary. Keys are sparse: a country may store any
// subset, and absent keys surface as null in the quote payload.
const (
	FieldBusinessTitleEn              = "business_title_en"
	FieldBusinessTitleLocal           = "business_title_local"
	FieldBusinessContentEn            = "business_content_en"
	FieldBusinessContentLocal         = "business_content_local"
	FieldBusinessButtonTextEn         = "business_button_text_en"
	FieldBusinessButtonTextLocal      = "business_button_text_local"
	FieldBusinessButtonLink           = "business_button_link"
	FieldBusinessAdditionalListEn     = "business_additional_list_en"
	FieldBusinessAdditionalListLocal  = "business_additional_list_local"
	FieldBusinessAdditionalValueEn    = "business_additional_list_value_en"
	FieldBusinessAdditionalValueLocal = "business_additional_list_value_local"
	FieldBusinessConditionListEn      = "business_condition_list_en"
	FieldBusinessConditionListLocal   = "business_condition_list_local"
	FieldBusinessPricePrefixEn        = "business_price_prefix_en"
	FieldBusinessPricePrefixLocal     = "business_price_prefix_local"
	FieldBusinessRemarkEn             = "business_remark_en"
	FieldBusinessRemarkLocal          = "business_remark_local"

	FieldPersonalTitleEn              = "personal_title_en"
	FieldPersonalTitleLocal           = "personal_title_local"
	FieldPersonalContentEn            = "personal_content_en"
	FieldPersonalContentLocal         = "personal_content_local"
	FieldPersonalButtonTextEn         = "personal_button_text_en"
	FieldPersonalButtonTextLocal      = "personal_button_text_local"
	FieldPersonalButtonLink           = "personal_button_link"
	FieldPersonalAdditionalListEn     = "personal_additional_list_en"
	FieldPersonalAdditionalListLocal  = "personal_additional_list_local"
	FieldPersonalAdditionalValueEn    = "personal_additional_list_value_en"
	FieldPersonalAdditionalValueLocal = "personal_additional_list_value_local"
	FieldPersonalConditionListEn      = "personal_condition_list_en"
	FieldPersonalConditionListLocal   = "personal_condition_list_local"
	FieldPersonalPricePrefixEn        = "personal_price_prefix_en"
	FieldPersonalPricePrefixLocal     = "personal_price_prefix_local"

	FieldFooterEn    = "footer_en"
	FieldFooterLocal = "footer_local"
)

// ContentFieldKeys lists the whole vocabulary. Bulk content upserts reject
// keys outside this list.
func ContentFieldKeys() []string {
	return []string{
		FieldBusinessTitleEn, FieldBusinessTitleLocal,
		FieldBusinessContentEn, FieldBusinessContentLocal,
		FieldBusinessButtonTextEn, FieldBusinessButtonTextLocal,
		FieldBusinessButtonLink,
		FieldBusinessAdditionalListEn, FieldBusinessAdditionalListLocal,
		FieldBusinessAdditionalValueEn, FieldBusinessAdditionalValueLocal,
		FieldBusinessConditionListEn, FieldBusinessConditionListLocal,
		FieldBusinessPricePrefixEn, FieldBusinessPricePrefixLocal,
		FieldBusinessRemarkEn, FieldBusinessRemarkLocal,
		FieldPersonalTitleEn, FieldPersonalTitleLocal,
		FieldPersonalContentEn, FieldPersonalContentLocal,
		FieldPersonalButtonTextEn, FieldPersonalButtonTextLocal,
		FieldPersonalButtonLink,
		FieldPersonalAdditionalListEn, FieldPersonalAdditionalListLocal,
		FieldPersonalAdditionalValueEn, FieldPersonalAdditionalValueLocal,
		FieldPersonalConditionListEn, FieldPersonalConditionListLocal,
		FieldPersonalPricePrefixEn, FieldPersonalPricePrefixLocal,
		FieldFooterEn, FieldFooterLocal,
	}
}

// BodyFieldKeys lists the fields whose text goes through placeholder
// substitution and the red-marker transform.
func BodyFieldKeys() []string {
	return []string{
		FieldBusinessContentEn, FieldBusinessContentLocal,
		FieldBusinessRemarkEn, FieldBusinessRemarkLocal,
		FieldPersonalContentEn, FieldPersonalContentLocal,
	}
}

// IsContentFieldKey reports whether key belongs to the vocabulary.
func IsContentFieldKey(key string) bool {
	for _, k := range ContentFieldKeys() {
		if k == key {
			return true
		}
	}
	return false
}
