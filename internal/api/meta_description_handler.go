package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/phrazzld/metadesc-api/internal/api/shared"
	"github.com/phrazzld/metadesc-api/internal/generation"
	"github.com/phrazzld/metadesc-api/internal/platform/logger"
	"github.com/phrazzld/metadesc-api/internal/provider"
	"github.com/phrazzld/metadesc-api/internal/settings"
	"github.com/phrazzld/metadesc-api/internal/store"
)

// Client-facing messages of the meta description endpoints.
const (
	MsgUnsavedContent       = "Cannot generate meta description for unsaved content. Please save the content first."
	MsgInvalidItemID        = "Invalid item_id"
	MsgBundleNotEnabled     = "AI meta description generation is not enabled for this content type."
	MsgLoadingContentPrefix = "Error loading content: "
	MsgSettingsUnavailable  = "Unable to load generation settings."
)

// ProviderCatalog lists the chat providers available to the settings form.
type ProviderCatalog interface {
	HasChatProvider() bool
	Options() []provider.Option
}

// MetaDescriptionHandler serves the generation and settings endpoints.
type MetaDescriptionHandler struct {
	contents  store.ContentStore
	settings  settings.Loader
	generator generation.Generator
	providers ProviderCatalog
	logger    *slog.Logger
}

// NewMetaDescriptionHandler creates a handler with the given dependencies.
func NewMetaDescriptionHandler(
	contents store.ContentStore,
	settingsLoader settings.Loader,
	generator generation.Generator,
	providers ProviderCatalog,
	logger *slog.Logger,
) *MetaDescriptionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &MetaDescriptionHandler{
		contents:  contents,
		settings:  settingsLoader,
		generator: generator,
		providers: providers,
		logger:    logger.With(slog.String("component", "meta_description_handler")),
	}
}

// Generate handles GET /api/meta-description/generate.
func (h *MetaDescriptionHandler) Generate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContextOrDefault(ctx, h.logger)

	itemID, err := getItemID(r)
	if err != nil {
		msg := MsgInvalidItemID
		if errors.Is(err, errUnsavedContent) {
			msg = MsgUnsavedContent
		}
		shared.RespondWithError(w, r, http.StatusBadRequest, msg)
		return
	}
	regenerate := getBoolQuery(r, "regenerate")

	current, err := h.settings.Load(ctx)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, MsgSettingsUnavailable, err)
		return
	}

	item, err := h.contents.GetByID(ctx, itemID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err),
			MsgLoadingContentPrefix+GetSafeErrorMessage(err),
			err)
		return
	}

	// Disabled settings go straight to the generator, which reports them.
	if current.Enabled && !current.BundleEnabled(item.Bundle) {
		log.Debug("generation not enabled for bundle",
			slog.Int64("item_id", item.ID),
			slog.String("bundle", item.Bundle))
		shared.RespondWithError(w, r, http.StatusForbidden, MsgBundleNotEnabled)
		return
	}

	switch result := h.generator.Generate(ctx, current, item).(type) {
	case generation.Success:
		length, status := generation.ClassifyLength(result.Description)
		shared.RespondWithJSON(w, r, http.StatusOK, GenerateResponse{
			Description:  result.Description,
			Length:       length,
			LengthStatus: status,
			Regenerated:  regenerate,
		})
	case generation.Failure:
		log.Info("meta description generation failed",
			slog.Int64("item_id", item.ID),
			slog.String("kind", string(result.Kind)),
			slog.Bool("regenerate", regenerate))
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, result.Message)
	default:
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			generation.MsgUnexpected, errors.New("generator returned no result"))
	}
}

// Settings handles GET /api/meta-description/settings.
func (h *MetaDescriptionHandler) Settings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	current, err := h.settings.Load(ctx)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, MsgSettingsUnavailable, err)
		return
	}

	bundles, err := h.contents.ListBundles(ctx)
	if err != nil {
		HandleAPIError(w, r, err, "Unable to load content types.")
		return
	}

	options := h.providers.Options()
	if options == nil {
		options = []provider.Option{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SettingsResponse{
		Settings:         current,
		EffectivePersona: current.EffectivePersona(),
		HasChatProvider:  h.providers.HasChatProvider(),
		ProviderOptions:  options,
		Bundles:          bundles,
	})
}
