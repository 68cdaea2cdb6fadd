// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/answerevent"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/badge"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/irregularverb"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/unitknowledge"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/userbadge"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/userxp"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/vocabcluster"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/vocabpack"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/vocabsense"
	"github.com/eslsoft/lingua/internal/infrastructure/database/ent/xpevent"
	"github.com/eslsoft/lingua/internal/infrastructure/database/entschema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventFields := entschema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescKind is the schema descriptor for kind field.
	answereventDescKind := answereventFields[1].Descriptor()
	// answerevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	answerevent.KindValidator = answereventDescKind.Validators[0].(func(string) error)
	// answereventDescContextSlug is the schema descriptor for context_slug field.
	answereventDescContextSlug := answereventFields[2].Descriptor()
	// answerevent.DefaultContextSlug holds the default value on creation for the context_slug field.
	answerevent.DefaultContextSlug = answereventDescContextSlug.Default.(string)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[3].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescPrompt is the schema descriptor for prompt field.
	answereventDescPrompt := answereventFields[4].Descriptor()
	// answerevent.DefaultPrompt holds the default value on creation for the prompt field.
	answerevent.DefaultPrompt = answereventDescPrompt.Default.(string)
	// answereventDescExpected is the schema descriptor for expected field.
	answereventDescExpected := answereventFields[5].Descriptor()
	// answerevent.DefaultExpected holds the default value on creation for the expected field.
	answerevent.DefaultExpected = answereventDescExpected.Default.(string)
	// answereventDescGiven is the schema descriptor for given field.
	answereventDescGiven := answereventFields[6].Descriptor()
	// answerevent.DefaultGiven holds the default value on creation for the given field.
	answerevent.DefaultGiven = answereventDescGiven.Default.(string)
	// answereventDescCreatedAt is the schema descriptor for created_at field.
	answereventDescCreatedAt := answereventFields[8].Descriptor()
	// answerevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	answerevent.DefaultCreatedAt = answereventDescCreatedAt.Default.(func() time.Time)
	badgeFields := entschema.Badge{}.Fields()
	_ = badgeFields
	// badgeDescSlug is the schema descriptor for slug field.
	badgeDescSlug := badgeFields[0].Descriptor()
	// badge.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	badge.SlugValidator = badgeDescSlug.Validators[0].(func(string) error)
	// badgeDescName is the schema descriptor for name field.
	badgeDescName := badgeFields[1].Descriptor()
	// badge.NameValidator is a validator for the "name" field. It is called by the builders before save.
	badge.NameValidator = badgeDescName.Validators[0].(func(string) error)
	// badgeDescDescription is the schema descriptor for description field.
	badgeDescDescription := badgeFields[2].Descriptor()
	// badge.DefaultDescription holds the default value on creation for the description field.
	badge.DefaultDescription = badgeDescDescription.Default.(string)
	// badgeDescIcon is the schema descriptor for icon field.
	badgeDescIcon := badgeFields[3].Descriptor()
	// badge.DefaultIcon holds the default value on creation for the icon field.
	badge.DefaultIcon = badgeDescIcon.Default.(string)
	irregularverbFields := entschema.IrregularVerb{}.Fields()
	_ = irregularverbFields
	// irregularverbDescBase is the schema descriptor for base field.
	irregularverbDescBase := irregularverbFields[0].Descriptor()
	// irregularverb.BaseValidator is a validator for the "base" field. It is called by the builders before save.
	irregularverb.BaseValidator = irregularverbDescBase.Validators[0].(func(string) error)
	// irregularverbDescPast is the schema descriptor for past field.
	irregularverbDescPast := irregularverbFields[1].Descriptor()
	// irregularverb.PastValidator is a validator for the "past" field. It is called by the builders before save.
	irregularverb.PastValidator = irregularverbDescPast.Validators[0].(func(string) error)
	// irregularverbDescParticiple is the schema descriptor for participle field.
	irregularverbDescParticiple := irregularverbFields[2].Descriptor()
	// irregularverb.ParticipleValidator is a validator for the "participle" field. It is called by the builders before save.
	irregularverb.ParticipleValidator = irregularverbDescParticiple.Validators[0].(func(string) error)
	// irregularverbDescTranslation is the schema descriptor for translation field.
	irregularverbDescTranslation := irregularverbFields[3].Descriptor()
	// irregularverb.DefaultTranslation holds the default value on creation for the translation field.
	irregularverb.DefaultTranslation = irregularverbDescTranslation.Default.(string)
	unitknowledgeFields := entschema.UnitKnowledge{}.Fields()
	_ = unitknowledgeFields
	// unitknowledgeDescUnitType is the schema descriptor for unit_type field.
	unitknowledgeDescUnitType := unitknowledgeFields[1].Descriptor()
	// unitknowledge.UnitTypeValidator is a validator for the "unit_type" field. It is called by the builders before save.
	unitknowledge.UnitTypeValidator = unitknowledgeDescUnitType.Validators[0].(func(string) error)
	// unitknowledgeDescTotalAttempts is the schema descriptor for total_attempts field.
	unitknowledgeDescTotalAttempts := unitknowledgeFields[3].Descriptor()
	// unitknowledge.DefaultTotalAttempts holds the default value on creation for the total_attempts field.
	unitknowledge.DefaultTotalAttempts = unitknowledgeDescTotalAttempts.Default.(int64)
	// unitknowledgeDescCorrectCount is the schema descriptor for correct_count field.
	unitknowledgeDescCorrectCount := unitknowledgeFields[4].Descriptor()
	// unitknowledge.DefaultCorrectCount holds the default value on creation for the correct_count field.
	unitknowledge.DefaultCorrectCount = unitknowledgeDescCorrectCount.Default.(int64)
	// unitknowledgeDescWrongCount is the schema descriptor for wrong_count field.
	unitknowledgeDescWrongCount := unitknowledgeFields[5].Descriptor()
	// unitknowledge.DefaultWrongCount holds the default value on creation for the wrong_count field.
	unitknowledge.DefaultWrongCount = unitknowledgeDescWrongCount.Default.(int64)
	// unitknowledgeDescStabilityScore is the schema descriptor for stability_score field.
	unitknowledgeDescStabilityScore := unitknowledgeFields[9].Descriptor()
	// unitknowledge.DefaultStabilityScore holds the default value on creation for the stability_score field.
	unitknowledge.DefaultStabilityScore = unitknowledgeDescStabilityScore.Default.(int64)
	// unitknowledgeDescState is the schema descriptor for state field.
	unitknowledgeDescState := unitknowledgeFields[10].Descriptor()
	// unitknowledge.StateValidator is a validator for the "state" field. It is called by the builders before save.
	unitknowledge.StateValidator = unitknowledgeDescState.Validators[0].(func(string) error)
	// unitknowledgeDescCreatedAt is the schema descriptor for created_at field.
	unitknowledgeDescCreatedAt := unitknowledgeFields[11].Descriptor()
	// unitknowledge.DefaultCreatedAt holds the default value on creation for the created_at field.
	unitknowledge.DefaultCreatedAt = unitknowledgeDescCreatedAt.Default.(func() time.Time)
	// unitknowledgeDescUpdatedAt is the schema descriptor for updated_at field.
	unitknowledgeDescUpdatedAt := unitknowledgeFields[12].Descriptor()
	// unitknowledge.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	unitknowledge.DefaultUpdatedAt = unitknowledgeDescUpdatedAt.Default.(func() time.Time)
	// unitknowledge.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	unitknowledge.UpdateDefaultUpdatedAt = unitknowledgeDescUpdatedAt.UpdateDefault.(func() time.Time)
	userbadgeFields := entschema.UserBadge{}.Fields()
	_ = userbadgeFields
	// userbadgeDescBadgeSlug is the schema descriptor for badge_slug field.
	userbadgeDescBadgeSlug := userbadgeFields[1].Descriptor()
	// userbadge.BadgeSlugValidator is a validator for the "badge_slug" field. It is called by the builders before save.
	userbadge.BadgeSlugValidator = userbadgeDescBadgeSlug.Validators[0].(func(string) error)
	// userbadgeDescAwardedAt is the schema descriptor for awarded_at field.
	userbadgeDescAwardedAt := userbadgeFields[2].Descriptor()
	// userbadge.DefaultAwardedAt holds the default value on creation for the awarded_at field.
	userbadge.DefaultAwardedAt = userbadgeDescAwardedAt.Default.(func() time.Time)
	userxpFields := entschema.UserXp{}.Fields()
	_ = userxpFields
	// userxpDescXpTotal is the schema descriptor for xp_total field.
	userxpDescXpTotal := userxpFields[1].Descriptor()
	// userxp.DefaultXpTotal holds the default value on creation for the xp_total field.
	userxp.DefaultXpTotal = userxpDescXpTotal.Default.(int64)
	// userxpDescLevel is the schema descriptor for level field.
	userxpDescLevel := userxpFields[2].Descriptor()
	// userxp.DefaultLevel holds the default value on creation for the level field.
	userxp.DefaultLevel = userxpDescLevel.Default.(int64)
	// userxpDescUpdatedAt is the schema descriptor for updated_at field.
	userxpDescUpdatedAt := userxpFields[3].Descriptor()
	// userxp.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	userxp.DefaultUpdatedAt = userxpDescUpdatedAt.Default.(func() time.Time)
	// userxp.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	userxp.UpdateDefaultUpdatedAt = userxpDescUpdatedAt.UpdateDefault.(func() time.Time)
	vocabclusterFields := entschema.VocabCluster{}.Fields()
	_ = vocabclusterFields
	// vocabclusterDescSlug is the schema descriptor for slug field.
	vocabclusterDescSlug := vocabclusterFields[0].Descriptor()
	// vocabcluster.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	vocabcluster.SlugValidator = vocabclusterDescSlug.Validators[0].(func(string) error)
	// vocabclusterDescName is the schema descriptor for name field.
	vocabclusterDescName := vocabclusterFields[1].Descriptor()
	// vocabcluster.NameValidator is a validator for the "name" field. It is called by the builders before save.
	vocabcluster.NameValidator = vocabclusterDescName.Validators[0].(func(string) error)
	// vocabclusterDescTopic is the schema descriptor for topic field.
	vocabclusterDescTopic := vocabclusterFields[2].Descriptor()
	// vocabcluster.DefaultTopic holds the default value on creation for the topic field.
	vocabcluster.DefaultTopic = vocabclusterDescTopic.Default.(string)
	vocabpackFields := entschema.VocabPack{}.Fields()
	_ = vocabpackFields
	// vocabpackDescSlug is the schema descriptor for slug field.
	vocabpackDescSlug := vocabpackFields[0].Descriptor()
	// vocabpack.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	vocabpack.SlugValidator = vocabpackDescSlug.Validators[0].(func(string) error)
	// vocabpackDescName is the schema descriptor for name field.
	vocabpackDescName := vocabpackFields[1].Descriptor()
	// vocabpack.NameValidator is a validator for the "name" field. It is called by the builders before save.
	vocabpack.NameValidator = vocabpackDescName.Validators[0].(func(string) error)
	// vocabpackDescDescription is the schema descriptor for description field.
	vocabpackDescDescription := vocabpackFields[2].Descriptor()
	// vocabpack.DefaultDescription holds the default value on creation for the description field.
	vocabpack.DefaultDescription = vocabpackDescDescription.Default.(string)
	// vocabpackDescLanguage is the schema descriptor for language field.
	vocabpackDescLanguage := vocabpackFields[3].Descriptor()
	// vocabpack.DefaultLanguage holds the default value on creation for the language field.
	vocabpack.DefaultLanguage = vocabpackDescLanguage.Default.(string)
	// vocabpackDescFlagship is the schema descriptor for flagship field.
	vocabpackDescFlagship := vocabpackFields[4].Descriptor()
	// vocabpack.DefaultFlagship holds the default value on creation for the flagship field.
	vocabpack.DefaultFlagship = vocabpackDescFlagship.Default.(bool)
	vocabsenseFields := entschema.VocabSense{}.Fields()
	_ = vocabsenseFields
	// vocabsenseDescWord is the schema descriptor for word field.
	vocabsenseDescWord := vocabsenseFields[0].Descriptor()
	// vocabsense.WordValidator is a validator for the "word" field. It is called by the builders before save.
	vocabsense.WordValidator = vocabsenseDescWord.Validators[0].(func(string) error)
	// vocabsenseDescTranslation is the schema descriptor for translation field.
	vocabsenseDescTranslation := vocabsenseFields[1].Descriptor()
	// vocabsense.DefaultTranslation holds the default value on creation for the translation field.
	vocabsense.DefaultTranslation = vocabsenseDescTranslation.Default.(string)
	// vocabsenseDescPackSlug is the schema descriptor for pack_slug field.
	vocabsenseDescPackSlug := vocabsenseFields[2].Descriptor()
	// vocabsense.DefaultPackSlug holds the default value on creation for the pack_slug field.
	vocabsense.DefaultPackSlug = vocabsenseDescPackSlug.Default.(string)
	// vocabsenseDescClusterSlug is the schema descriptor for cluster_slug field.
	vocabsenseDescClusterSlug := vocabsenseFields[3].Descriptor()
	// vocabsense.DefaultClusterSlug holds the default value on creation for the cluster_slug field.
	vocabsense.DefaultClusterSlug = vocabsenseDescClusterSlug.Default.(string)
	xpeventFields := entschema.XpEvent{}.Fields()
	_ = xpeventFields
	// xpeventDescSource is the schema descriptor for source field.
	xpeventDescSource := xpeventFields[1].Descriptor()
	// xpevent.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	xpevent.SourceValidator = xpeventDescSource.Validators[0].(func(string) error)
	// xpeventDescSourceSlug is the schema descriptor for source_slug field.
	xpeventDescSourceSlug := xpeventFields[2].Descriptor()
	// xpevent.DefaultSourceSlug holds the default value on creation for the source_slug field.
	xpevent.DefaultSourceSlug = xpeventDescSourceSlug.Default.(string)
	// xpeventDescSessionID is the schema descriptor for session_id field.
	xpeventDescSessionID := xpeventFields[3].Descriptor()
	// xpevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	xpevent.SessionIDValidator = xpeventDescSessionID.Validators[0].(func(string) error)
	// xpeventDescDedupeKey is the schema descriptor for dedupe_key field.
	xpeventDescDedupeKey := xpeventFields[4].Descriptor()
	// xpevent.DedupeKeyValidator is a validator for the "dedupe_key" field. It is called by the builders before save.
	xpevent.DedupeKeyValidator = xpeventDescDedupeKey.Validators[0].(func(string) error)
	// xpeventDescAwardedOn is the schema descriptor for awarded_on field.
	xpeventDescAwardedOn := xpeventFields[5].Descriptor()
	// xpevent.AwardedOnValidator is a validator for the "awarded_on" field. It is called by the builders before save.
	xpevent.AwardedOnValidator = xpeventDescAwardedOn.Validators[0].(func(string) error)
	// xpeventDescPerfect is the schema descriptor for perfect field.
	xpeventDescPerfect := xpeventFields[7].Descriptor()
	// xpevent.DefaultPerfect holds the default value on creation for the perfect field.
	xpevent.DefaultPerfect = xpeventDescPerfect.Default.(bool)
	// xpeventDescMeta is the schema descriptor for meta field.
	xpeventDescMeta := xpeventFields[8].Descriptor()
	// xpevent.DefaultMeta holds the default value on creation for the meta field.
	xpevent.DefaultMeta = xpeventDescMeta.Default.(map[string]string)
	// xpeventDescCreatedAt is the schema descriptor for created_at field.
	xpeventDescCreatedAt := xpeventFields[9].Descriptor()
	// xpevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	xpevent.DefaultCreatedAt = xpeventDescCreatedAt.Default.(func() time.Time)
}
