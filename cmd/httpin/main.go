package main

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/vidprobe/vidprobe"
	"github.com/vidprobe/vidprobe/environment"
	"github.com/vidprobe/vidprobe/extract"
	"github.com/vidprobe/vidprobe/services/adobetv"
	"github.com/vidprobe/vidprobe/services/httpjson"
)

var (
	logger   zerolog.Logger
	registry *extract.Registry
)

func getParamFromCtx(ctx *gin.Context, key string) string {
	return ctx.DefaultPostForm(key, ctx.DefaultQuery(key, ""))
}

func probeHandler(ctx *gin.Context) {
	requestID := uuid.NewString()

	rawURL := getParamFromCtx(ctx, "url")
	if rawURL == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "url parameter is required",
		})
		return
	}

	info, err := registry.Extract(rawURL)
	if err != nil {
		logger.Error().Err(err).Str("request_id", requestID).Str("url", rawURL).Msg("extraction failed")

		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, vidprobe.ErrNoMatch):
			status = http.StatusNotFound
		case errors.Is(err, vidprobe.ErrFetchFailure):
			status = http.StatusBadGateway
		case errors.Is(err, vidprobe.ErrMissingField):
			status = http.StatusUnprocessableEntity
		}

		ctx.JSON(status, gin.H{
			"error":      err.Error(),
			"request_id": requestID,
		})
		return
	}

	logger.Info().Str("request_id", requestID).Str("url", rawURL).Str("id", info.ID).Msg("extracted")
	ctx.JSON(http.StatusOK, info)
}

func main() {
	_ = godotenv.Load()

	logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

	client := httpjson.NewClient(environment.GetUserAgent(), environment.GetHTTPTimeout())
	registry = extract.NewRegistry(
		adobetv.NewEpisodeExtractor(client, ""),
		adobetv.NewVideoExtractor(client),
	)

	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/probe", probeHandler)
	r.POST("/probe", probeHandler)

	_ = r.Run(":" + environment.GetPort())
}
