package recipes

import (
	"bytes"
	"log/slog"
	"net/http"

	apiError "github.com/mign0n/foodgram-project/internal/api/error"
	"github.com/mign0n/foodgram-project/internal/api/requestid"
	"github.com/mign0n/foodgram-project/internal/api/token"
	"github.com/mign0n/foodgram-project/internal/env"
	"github.com/mign0n/foodgram-project/internal/export"
	"github.com/mign0n/foodgram-project/internal/metrics"
	"github.com/mign0n/foodgram-project/internal/shopping"
)

// DownloadShoppingCart godoc
//
//	@Summary		Download the shopping list.
//	@Description	Sums the ingredients of every recipe in the caller's cart. The format comes from `format`,
//	@Description	then the Accept header, and defaults to txt.
//	@Tags			Shopping Cart
//
//	@Produce		plain
//	@Produce		text/csv
//	@Param			format	query	string	false	"csv or txt"
//	@Success		200		{file}	file
//	@Failure		401		{object}	apiError.Error	"Unauthorized"
//	@Failure		429		{object}	apiError.Error	"Too Many Requests"
//	@Security		BearerAuth
//	@Router			/recipes/download_shopping_cart [GET]
func DownloadShoppingCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := requestid.ExtractRequestID(ctx)
	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to extract user id from context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	strategy := env.Config.Shopping.Aggregation
	env.Logger.DebugContext(ctx, "building shopping list", slog.String("strategy", string(strategy)))
	items, err := shopping.List(ctx, env.Database, strategy, userID)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to build shopping list", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	format := export.Negotiate(r)
	var buf bytes.Buffer
	if err := export.Render(&buf, format, items); err != nil {
		env.Logger.ErrorContext(ctx, "failed to render shopping list", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	metrics.RecordExport(string(format))

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", format.ContentDisposition())
	if _, err := w.Write(buf.Bytes()); err != nil {
		env.Logger.ErrorContext(ctx, "failed to write response", slog.Any("error", err))
	}
}
