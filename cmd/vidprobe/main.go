package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/vidprobe/vidprobe"
	"github.com/vidprobe/vidprobe/environment"
	"github.com/vidprobe/vidprobe/extract"
	"github.com/vidprobe/vidprobe/services/adobetv"
	"github.com/vidprobe/vidprobe/services/httpjson"
	"github.com/vidprobe/vidprobe/utils"
)

func main() {
	_ = godotenv.Load()

	maxResolution := flag.String("max-resolution", "", "drop formats larger than WxH, e.g. 1280x720")
	subsLang := flag.String("subs-lang", "", "keep only subtitles for this ISO language code")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if environment.IsDebug() {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}

	if flag.NArg() != 1 {
		logger.Fatal().Msg("usage: vidprobe [flags] URL")
	}
	rawURL := flag.Arg(0)

	client := httpjson.NewClient(environment.GetUserAgent(), environment.GetHTTPTimeout())
	registry := extract.NewRegistry(
		adobetv.NewEpisodeExtractor(client, ""),
		adobetv.NewVideoExtractor(client),
	)

	logger.Debug().Strs("extractors", registry.Names()).Str("url", rawURL).Msg("probing")

	info, err := registry.Extract(rawURL)
	if err != nil {
		logger.Fatal().Err(err).Str("url", rawURL).Msg("extraction failed")
	}

	if *maxResolution != "" {
		res, err := utils.ResolutionFromString(*maxResolution)
		if err != nil {
			logger.Fatal().Err(err).Msg("invalid -max-resolution")
		}
		info.Formats = utils.FilterMaxResolution(info.Formats, *res)
	}

	if *subsLang != "" {
		lang, err := vidprobe.ParseLanguageCode(*subsLang)
		if err != nil {
			logger.Fatal().Str("lang", *subsLang).Msg("unknown subtitle language")
		}
		if tracks, ok := info.Subtitles[lang.Code]; ok {
			info.Subtitles = map[string][]vidprobe.SubtitleTrack{lang.Code: tracks}
		} else {
			info.Subtitles = nil
		}
	}

	out, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		logger.Fatal().Err(err).Msg("encoding result")
	}
	fmt.Println(string(out))
}
