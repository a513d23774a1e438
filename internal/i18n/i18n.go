package i18n

import (
	"embed"
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/assettoken/asset-token/internal/config"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
)

//go:embed messages/*.toml
var messagesFS embed.FS

// Data is passed to the message templates.
type Data map[string]string

// Service translates message keys into the supported languages.
type Service struct {
	bundle      *i18n.Bundle
	matcher     language.Matcher
	defaultLang language.Tag
	tags        []language.Tag
}

func New(cfg config.I18n) (*Service, error) {
	bundle := i18n.NewBundle(cfg.DefaultLanguage)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(messagesFS, "messages/*.toml")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list message files")
	}

	// default language first, the matcher falls back to the first tag
	tags := []language.Tag{cfg.DefaultLanguage}
	for _, file := range files {
		mf, err := bundle.LoadMessageFileFS(messagesFS, file)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load message file %s", file)
		}

		if mf.Tag != cfg.DefaultLanguage {
			tags = append(tags, mf.Tag)
		}
	}

	return &Service{
		bundle:      bundle,
		matcher:     language.NewMatcher(tags),
		defaultLang: cfg.DefaultLanguage,
		tags:        tags,
	}, nil
}

// Translate returns the message for key in lang, falling back to the default language.
// Unknown keys are returned unchanged.
func (s *Service) Translate(key string, lang language.Tag, data ...Data) string {
	localizer := i18n.NewLocalizer(s.bundle, lang.String(), s.defaultLang.String())

	lc := &i18n.LocalizeConfig{MessageID: key}
	if len(data) > 0 {
		lc.TemplateData = data[0]
	}

	msg, err := localizer.Localize(lc)
	if err != nil {
		log.Debug().Err(err).Str("key", key).Str("lang", lang.String()).Msg("Failed to translate message")
		return key
	}

	return msg
}

// ParseAcceptLanguage picks the best supported language for an Accept-Language header.
func (s *Service) ParseAcceptLanguage(header string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return s.defaultLang
	}

	return s.match(tags...)
}

// ParseLanguage picks the best supported language for a single language string like "de-AT".
func (s *Service) ParseLanguage(lang string) language.Tag {
	tag, err := language.Parse(lang)
	if err != nil {
		return s.defaultLang
	}

	return s.match(tag)
}

func (s *Service) match(tags ...language.Tag) language.Tag {
	_, idx, confidence := s.matcher.Match(tags...)
	if confidence == language.No {
		return s.defaultLang
	}

	return s.tags[idx]
}
