package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/swiftship/ratequote/internal/core/domain"
	"github.com/swiftship/ratequote/internal/core/services"
)

type ContentResolverTestSuite struct {
	suite.Suite
	mockContentRepo *MockContentRepository
	resolver        *services.ContentResolver
	country         *domain.Country
	receiver        *domain.Receiver
}

func (suite *ContentResolverTestSuite) SetupTest() {
	suite.mockContentRepo = new(MockContentRepository)
	suite.resolver = services.NewContentResolver(suite.mockContentRepo)
	suite.country = &domain.Country{CountryID: "country-1", Code: "SG"}
	transitDay := 3
	suite.receiver = &domain.Receiver{
		ReceiverID: "receiver-1",
		CountryID:  "country-1",
		Name:       "Singapore",
		Zone:       "Z1",
		TransitDay: &transitDay,
	}
}

func (suite *ContentResolverTestSuite) expectContent(entries map[string]string, replaceable, static []domain.PlaceholderField) {
	ctx := context.Background()
	suite.mockContentRepo.On("GetContentEntries", ctx, "country-1").Return(entries, nil).Once()
	suite.mockContentRepo.On("GetPlaceholderFields", ctx, "country-1", domain.PlaceholderReplaceable).Return(replaceable, nil).Once()
	suite.mockContentRepo.On("GetPlaceholderFields", ctx, "country-1", domain.PlaceholderStatic).Return(static, nil).Once()
}

func tierPayload(suite *ContentResolverTestSuite, langs map[string]any, tier string) map[string]any {
	payload, ok := langs[tier].(map[string]any)
	suite.Require().True(ok, "missing %s payload", tier)
	return payload
}

func (suite *ContentResolverTestSuite) TestResolve_SubstitutesAllSources() {
	entries := map[string]string{
		domain.FieldBusinessContentEn: "Hello {%customer_name%}, delivery to {%receiver_country%} takes {%transit_day%} days, shipped from {%branch_city%}.",
	}
	replaceable := []domain.PlaceholderField{{Name: "customer_name", Kind: domain.PlaceholderReplaceable}}
	static := []domain.PlaceholderField{{Name: "branch_city", Kind: domain.PlaceholderStatic, StaticValue: "Jakarta"}}
	suite.expectContent(entries, replaceable, static)

	langs, err := suite.resolver.Resolve(context.Background(), suite.country, suite.receiver, map[string]string{"customer_name": "Alice"})

	suite.Require().NoError(err)
	business := tierPayload(suite, langs, "business")
	suite.Equal("Hello Alice, delivery to Singapore takes 3 days, shipped from Jakarta.", business["content_en"])
	suite.mockContentRepo.AssertExpectations(suite.T())
}

func (suite *ContentResolverTestSuite) TestResolve_IgnoresUnconfiguredRequestFields() {
	entries := map[string]string{
		domain.FieldBusinessContentEn: "Value is {%sneaky%}.",
	}
	suite.expectContent(entries, []domain.PlaceholderField{}, []domain.PlaceholderField{})

	langs, err := suite.resolver.Resolve(context.Background(), suite.country, suite.receiver, map[string]string{"sneaky": "injected"})

	suite.Require().NoError(err)
	business := tierPayload(suite, langs, "business")
	suite.Equal("Value is {%sneaky%}.", business["content_en"])
}

func (suite *ContentResolverTestSuite) TestResolve_NilTransitDaySubstitutesEmpty() {
	suite.receiver.TransitDay = nil
	entries := map[string]string{
		domain.FieldBusinessContentEn: "Takes {%transit_day%} days.",
	}
	suite.expectContent(entries, []domain.PlaceholderField{}, []domain.PlaceholderField{})

	langs, err := suite.resolver.Resolve(context.Background(), suite.country, suite.receiver, nil)

	suite.Require().NoError(err)
	business := tierPayload(suite, langs, "business")
	suite.Equal("Takes  days.", business["content_en"])
}

func (suite *ContentResolverTestSuite) TestResolve_MissingKeysAreNull() {
	suite.expectContent(map[string]string{}, []domain.PlaceholderField{}, []domain.PlaceholderField{})

	langs, err := suite.resolver.Resolve(context.Background(), suite.country, suite.receiver, nil)

	suite.Require().NoError(err)
	business := tierPayload(suite, langs, "business")
	personal := tierPayload(suite, langs, "personal")
	suite.Nil(business["title_en"])
	suite.Nil(business["remark_en"])
	suite.Nil(business["additional_list_en"])
	suite.Nil(personal["condition_list_local"])

	footer, ok := langs["footer"].(map[string]any)
	suite.Require().True(ok)
	suite.Nil(footer["en"])
	suite.Nil(footer["local"])
}

func (suite *ContentResolverTestSuite) TestResolve_PersonalPayloadHasNoRemark() {
	suite.expectContent(map[string]string{}, []domain.PlaceholderField{}, []domain.PlaceholderField{})

	langs, err := suite.resolver.Resolve(context.Background(), suite.country, suite.receiver, nil)

	suite.Require().NoError(err)
	personal := tierPayload(suite, langs, "personal")
	_, hasRemark := personal["remark_en"]
	suite.False(hasRemark)
}

func (suite *ContentResolverTestSuite) TestResolve_EscapesLeafStrings() {
	entries := map[string]string{
		domain.FieldBusinessTitleEn: `Big <b>Sale</b> & "More"`,
	}
	suite.expectContent(entries, []domain.PlaceholderField{}, []domain.PlaceholderField{})

	langs, err := suite.resolver.Resolve(context.Background(), suite.country, suite.receiver, nil)

	suite.Require().NoError(err)
	business := tierPayload(suite, langs, "business")
	suite.Equal("Big &lt;b&gt;Sale&lt;/b&gt; &amp; &#34;More&#34;", business["title_en"])
}

func (suite *ContentResolverTestSuite) TestResolve_EscapesSubstitutedValues() {
	entries := map[string]string{
		domain.FieldBusinessContentEn: "Hello {%customer_name%}.",
	}
	replaceable := []domain.PlaceholderField{{Name: "customer_name", Kind: domain.PlaceholderReplaceable}}
	suite.expectContent(entries, replaceable, []domain.PlaceholderField{})

	langs, err := suite.resolver.Resolve(context.Background(), suite.country, suite.receiver, map[string]string{"customer_name": "<script>x</script>"})

	suite.Require().NoError(err)
	business := tierPayload(suite, langs, "business")
	suite.Equal("Hello &lt;script&gt;x&lt;/script&gt;.", business["content_en"])
}

func (suite *ContentResolverTestSuite) TestResolve_SubstitutionsRunOnceInOrder() {
	entries := map[string]string{
		domain.FieldBusinessContentEn: "Hello {%customer_name%}.",
		domain.FieldPersonalContentEn: "Signed {%signature%}.",
	}
	replaceable := []domain.PlaceholderField{{Name: "customer_name", Kind: domain.PlaceholderReplaceable}}
	static := []domain.PlaceholderField{
		{Name: "branch_city", Kind: domain.PlaceholderStatic, StaticValue: "Jakarta"},
		{Name: "signature", Kind: domain.PlaceholderStatic, StaticValue: "by {%customer_name%}"},
	}
	suite.expectContent(entries, replaceable, static)

	langs, err := suite.resolver.Resolve(context.Background(), suite.country, suite.receiver, map[string]string{
		"customer_name": "{%branch_city%} and {%transit_day%}",
	})

	suite.Require().NoError(err)
	business := tierPayload(suite, langs, "business")
	personal := tierPayload(suite, langs, "personal")
	// A substituted value's tokens are consumed by later substitutions
	// (request fields run before the implicit and static ones)...
	suite.Equal("Hello Jakarta and 3.", business["content_en"])
	// ...but never by earlier ones: there is no second pass.
	suite.Equal("Signed by {%customer_name%}.", personal["content_en"])
}

func (suite *ContentResolverTestSuite) TestResolve_RedMarkersBecomeHTML() {
	entries := map[string]string{
		domain.FieldBusinessContentEn: "Normal <red>urgent</red> text",
		domain.FieldBusinessRemarkEn:  "<red>Note</red>",
		domain.FieldPersonalContentEn: "<red>Deal</red>",
		domain.FieldBusinessTitleEn:   "<red>not transformed here</red>",
	}
	suite.expectContent(entries, []domain.PlaceholderField{}, []domain.PlaceholderField{})

	langs, err := suite.resolver.Resolve(context.Background(), suite.country, suite.receiver, nil)

	suite.Require().NoError(err)
	business := tierPayload(suite, langs, "business")
	personal := tierPayload(suite, langs, "personal")
	suite.Equal(`Normal <div style="color:red">urgent</div> text`, business["content_en"])
	suite.Equal(`<div style="color:red">Note</div>`, business["remark_en"])
	suite.Equal(`<div style="color:red">Deal</div>`, personal["content_en"])
	// Non-body fields keep the escaped markers verbatim.
	suite.Equal("&lt;red&gt;not transformed here&lt;/red&gt;", business["title_en"])
}

func (suite *ContentResolverTestSuite) TestResolve_ZipsAdditionalLists() {
	entries := map[string]string{
		domain.FieldBusinessAdditionalListEn:  "Insurance || Packing",
		domain.FieldBusinessAdditionalValueEn: "10 || 20",
	}
	suite.expectContent(entries, []domain.PlaceholderField{}, []domain.PlaceholderField{})

	langs, err := suite.resolver.Resolve(context.Background(), suite.country, suite.receiver, nil)

	suite.Require().NoError(err)
	business := tierPayload(suite, langs, "business")
	pairs, ok := business["additional_list_en"].([]any)
	suite.Require().True(ok)
	suite.Require().Len(pairs, 2)
	suite.Equal(map[string]any{"name": "Insurance", "value": "10"}, pairs[0])
	suite.Equal(map[string]any{"name": "Packing", "value": "20"}, pairs[1])
}

func (suite *ContentResolverTestSuite) TestResolve_TruncatesMismatchedLists() {
	entries := map[string]string{
		domain.FieldBusinessAdditionalListEn:  "Insurance || Packing || Tracking",
		domain.FieldBusinessAdditionalValueEn: "10 || 20",
	}
	suite.expectContent(entries, []domain.PlaceholderField{}, []domain.PlaceholderField{})

	langs, err := suite.resolver.Resolve(context.Background(), suite.country, suite.receiver, nil)

	suite.Require().NoError(err)
	business := tierPayload(suite, langs, "business")
	pairs, ok := business["additional_list_en"].([]any)
	suite.Require().True(ok)
	suite.Len(pairs, 2)
}

func (suite *ContentResolverTestSuite) TestResolve_MissingValueListYieldsEmptyPairs() {
	entries := map[string]string{
		domain.FieldBusinessAdditionalListEn: "Insurance || Packing",
	}
	suite.expectContent(entries, []domain.PlaceholderField{}, []domain.PlaceholderField{})

	langs, err := suite.resolver.Resolve(context.Background(), suite.country, suite.receiver, nil)

	suite.Require().NoError(err)
	business := tierPayload(suite, langs, "business")
	pairs, ok := business["additional_list_en"].([]any)
	suite.Require().True(ok)
	suite.Empty(pairs)
}

func (suite *ContentResolverTestSuite) TestResolve_SplitsConditionLists() {
	entries := map[string]string{
		domain.FieldPersonalConditionListEn: "No liquids || No batteries",
	}
	suite.expectContent(entries, []domain.PlaceholderField{}, []domain.PlaceholderField{})

	langs, err := suite.resolver.Resolve(context.Background(), suite.country, suite.receiver, nil)

	suite.Require().NoError(err)
	personal := tierPayload(suite, langs, "personal")
	conditions, ok := personal["condition_list_en"].([]any)
	suite.Require().True(ok)
	suite.Equal([]any{"No liquids", "No batteries"}, conditions)
}

func (suite *ContentResolverTestSuite) TestResolve_RepoErrorPropagates() {
	ctx := context.Background()
	suite.mockContentRepo.On("GetContentEntries", ctx, "country-1").Return(nil, context.DeadlineExceeded).Once()

	_, err := suite.resolver.Resolve(ctx, suite.country, suite.receiver, nil)

	suite.Require().Error(err)
	suite.ErrorIs(err, context.DeadlineExceeded)
	suite.mockContentRepo.AssertExpectations(suite.T())
}

func TestContentResolver(t *testing.T) {
	suite.Run(t, new(ContentResolverTestSuite))
}
