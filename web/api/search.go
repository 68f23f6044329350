package api

import (
	"context"
	"net/http"
	"strings"

	"travelrec/models"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"
)

// Error texts returned by the search endpoint
const (
	ErrBlankTerm       = "search term is required"
	ErrDataUnavailable = "Sorry, there was an issue retrieving the data. Please try again later."
)

// Search returns the handler for GET /api/v1/search.
//
// Query parameters:
//   - q: the search term (required, not blank)
//
// The response data is a models.SearchPayload. A blank term answers 400,
// a dataset fetch or parse failure 502. A term that matches nothing is a
// normal 200 with an empty results array.
//
// Clients sending "Accept: application/msgpack" get the same envelope
// msgpack-encoded.
func Search(searcher *models.Searcher, searchIDHeader string) rweb.Handler {
	return func(ctx rweb.Context) error {
		term := QueryValue(ctx, "q")
		wantMsgPack := strings.Contains(ctx.Request().Header("Accept"), models.MsgPackContentType)

		if models.IsBlankTerm(term) {
			logger.Info("Please enter a search term.", "endpoint", "api")
			return respond(ctx, wantMsgPack, http.StatusBadRequest, nil, ErrBlankTerm)
		}

		out, err := searcher.Run(context.Background(), term)
		ctx.Response().SetHeader(searchIDHeader, out.SearchID)
		if err != nil {
			return respond(ctx, wantMsgPack, http.StatusBadGateway, nil, ErrDataUnavailable)
		}

		payload := out.ToPayload()
		return respond(ctx, wantMsgPack, http.StatusOK, &payload, "")
	}
}

// respond writes the envelope as JSON or msgpack
func respond(ctx rweb.Context, wantMsgPack bool, status int, payload *models.SearchPayload, errMsg string) error {
	if !wantMsgPack {
		if errMsg != "" {
			return writeError(ctx, status, errMsg)
		}
		return writeSuccess(ctx, status, payload)
	}

	body, err := models.EncodeMsgPack(models.MsgPackEnvelope{
		Success: errMsg == "",
		Data:    payload,
		Error:   errMsg,
	})
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to encode msgpack response"), "encoding error")
		return writeError(ctx, http.StatusInternalServerError, "failed to encode response")
	}

	ctx.SetStatus(status)
	ctx.Response().SetHeader("Content-Type", models.MsgPackContentType)
	return ctx.Bytes(body)
}
