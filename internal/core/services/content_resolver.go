package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/swiftship/ratequote/internal/core/domain"
	portsrepo "github.com/swiftship/ratequote/internal/core/ports/repositories"
	"github.com/swiftship/ratequote/internal/utils"
)

// listDelimiter separates entries inside the *_additional_list_* and
// *_condition_list_* content fields.
const listDelimiter = " || "

// Implicit placeholder names injected on every quote, independent of the
// country's replaceable-field configuration.
const (
	placeholderReceiverCountry = "receiver_country"
	placeholderTransitDay      = "transit_day"
)

// ContentResolver produces the localized marketing payload for one quote.
// Stateless per invocation; content data is read-only at quote time.
type ContentResolver struct {
	contentRepo portsrepo.ContentReader
}

// NewContentResolver creates a new ContentResolver.
func NewContentResolver(contentRepo portsrepo.ContentReader) *ContentResolver {
	return &ContentResolver{contentRepo: contentRepo}
}

// Resolve assembles the langs payload: placeholder substitution over the body
// fields, list-field assembly, a single leaf-escape pass, then the red-marker
// transform. Missing content entries surface as null, never as errors.
func (r *ContentResolver) Resolve(ctx context.Context, country *domain.Country, receiver *domain.Receiver, requestFields map[string]string) (map[string]any, error) {
	entries, err := r.contentRepo.GetContentEntries(ctx, country.CountryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load content entries for country %s: %w", country.Code, err)
	}

	replaceable, err := r.contentRepo.GetPlaceholderFields(ctx, country.CountryID, domain.PlaceholderReplaceable)
	if err != nil {
		return nil, fmt.Errorf("failed to load replaceable fields for country %s: %w", country.Code, err)
	}
	static, err := r.contentRepo.GetPlaceholderFields(ctx, country.CountryID, domain.PlaceholderStatic)
	if err != nil {
		return nil, fmt.Errorf("failed to load static fields for country %s: %w", country.Code, err)
	}

	substitutions := buildSubstitutions(receiver, replaceable, static, requestFields)
	contents := substituteBodyFields(entries, substitutions)

	langs := map[string]any{
		"business": buildTierPayload(contents, "business", true),
		"personal": buildTierPayload(contents, "personal", false),
		"footer": map[string]any{
			"en":    lookupText(contents, domain.FieldFooterEn),
			"local": lookupText(contents, domain.FieldFooterLocal),
		},
	}

	utils.EscapeLeafStrings(langs)
	applyBodyMarkup(langs)

	return langs, nil
}

type substitution struct {
	name  string
	value string
}

// buildSubstitutions collects the values to substitute, in order: dynamic
// request values filtered by the replaceable allow-list, the two implicit
// receiver-derived fields, then the static country facts. Only configured
// names are consulted, never arbitrary request keys, which keeps data-driven
// field names out of the substitution surface.
func buildSubstitutions(receiver *domain.Receiver, replaceable, static []domain.PlaceholderField, requestFields map[string]string) []substitution {
	subs := make([]substitution, 0, len(replaceable)+len(static)+2)

	for _, field := range replaceable {
		if value, ok := requestFields[field.Name]; ok {
			subs = append(subs, substitution{name: field.Name, value: value})
		}
	}

	subs = append(subs, substitution{name: placeholderReceiverCountry, value: receiver.Name})
	transitDay := ""
	if receiver.TransitDay != nil {
		transitDay = strconv.Itoa(*receiver.TransitDay)
	}
	subs = append(subs, substitution{name: placeholderTransitDay, value: transitDay})

	for _, field := range static {
		subs = append(subs, substitution{name: field.Name, value: field.StaticValue})
	}

	return subs
}

// substituteBodyFields replaces every {%name%} token in the body fields with
// its substitution value. Substitutions run once in order with no fixpoint
// loop: a token injected by a value is seen only by substitutions later in
// the order, so the pass always terminates.
func substituteBodyFields(entries map[string]string, subs []substitution) map[string]string {
	out := make(map[string]string, len(entries))
	for key, text := range entries {
		out[key] = text
	}

	for _, key := range domain.BodyFieldKeys() {
		text, ok := out[key]
		if !ok {
			continue
		}
		for _, sub := range subs {
			text = strings.ReplaceAll(text, "{%"+sub.name+"%}", sub.value)
		}
		out[key] = text
	}

	return out
}

// buildTierPayload assembles one tier's content block from the sparse entry
// map. Keys the country never stored come out as nil.
func buildTierPayload(entries map[string]string, tier string, withRemark bool) map[string]any {
	payload := map[string]any{
		"title_en":              lookupText(entries, tier+"_title_en"),
		"title_local":           lookupText(entries, tier+"_title_local"),
		"content_en":            lookupText(entries, tier+"_content_en"),
		"content_local":         lookupText(entries, tier+"_content_local"),
		"button_text_en":        lookupText(entries, tier+"_button_text_en"),
		"button_text_local":     lookupText(entries, tier+"_button_text_local"),
		"button_link":           lookupText(entries, tier+"_button_link"),
		"price_prefix_en":       lookupText(entries, tier+"_price_prefix_en"),
		"price_prefix_local":    lookupText(entries, tier+"_price_prefix_local"),
		"additional_list_en":    zipNameValueList(entries, tier+"_additional_list_en", tier+"_additional_list_value_en"),
		"additional_list_local": zipNameValueList(entries, tier+"_additional_list_local", tier+"_additional_list_value_local"),
		"condition_list_en":     splitConditionList(entries, tier+"_condition_list_en"),
		"condition_list_local":  splitConditionList(entries, tier+"_condition_list_local"),
	}
	if withRemark {
		payload["remark_en"] = lookupText(entries, tier+"_remark_en")
		payload["remark_local"] = lookupText(entries, tier+"_remark_local")
	}
	return payload
}

// lookupText returns the entry text, or nil when the key was never stored.
func lookupText(entries map[string]string, key string) any {
	if text, ok := entries[key]; ok {
		return text
	}
	return nil
}

// zipNameValueList pairs the name list with the value list positionally.
// Mismatched lengths truncate to the shorter list rather than failing, since
// a content misconfiguration must not block a price quote.
func zipNameValueList(entries map[string]string, nameKey, valueKey string) any {
	nameText, ok := entries[nameKey]
	if !ok {
		return nil
	}
	names := strings.Split(nameText, listDelimiter)
	values := strings.Split(entries[valueKey], listDelimiter)
	if entries[valueKey] == "" {
		values = nil
	}

	n := len(names)
	if len(values) < n {
		n = len(values)
	}

	pairs := make([]any, 0, n)
	for i := 0; i < n; i++ {
		pairs = append(pairs, map[string]any{
			"name":  names[i],
			"value": values[i],
		})
	}
	return pairs
}

// splitConditionList splits a condition field into a flat list of strings.
func splitConditionList(entries map[string]string, key string) any {
	text, ok := entries[key]
	if !ok {
		return nil
	}
	parts := strings.Split(text, listDelimiter)
	list := make([]any, len(parts))
	for i, p := range parts {
		list[i] = p
	}
	return list
}

// bodyPayloadKeys are the per-tier output keys whose text carries the red
// marker transform.
var bodyPayloadKeys = []string{"content_en", "content_local", "remark_en", "remark_local"}

// applyBodyMarkup rewrites the escaped red markers into real HTML wrapping in
// the body fields of both tiers. Runs after the leaf-escape pass.
func applyBodyMarkup(langs map[string]any) {
	for _, tier := range []string{"business", "personal"} {
		payload, ok := langs[tier].(map[string]any)
		if !ok {
			continue
		}
		for _, key := range bodyPayloadKeys {
			if text, ok := payload[key].(string); ok {
				payload[key] = utils.ApplyRedMarkup(text)
			}
		}
	}
}
