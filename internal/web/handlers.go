package web

import (
	"context"
	"net/http"

	"github.com/assettoken/asset-token/internal/frontend"
	"github.com/assettoken/asset-token/internal/i18n"
	"github.com/assettoken/asset-token/internal/util"
	"github.com/labstack/echo/v4"
	accept "github.com/timewasted/go-accept-headers"
	"golang.org/x/text/language"
)

const (
	formFieldRecipient = "recipient"
	formFieldAmount    = "amount"
	formFieldAddress   = "address"

	headerAcceptLanguage = "Accept-Language"
)

type page struct {
	Lang    language.Tag
	Mint    frontend.MintForm
	Balance frontend.BalanceForm

	i18n *i18n.Service
}

// T translates key into the language of the page.
func (p *page) T(key string) string {
	return p.i18n.Translate(key, p.Lang)
}

// languageMiddleware resolves the page language from ?lang= or Accept-Language.
func (s *Server) languageMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		var lang language.Tag
		if q := c.QueryParam("lang"); len(q) > 0 {
			lang = s.I18n.ParseLanguage(q)
		} else {
			lang = s.I18n.ParseAcceptLanguage(c.Request().Header.Get(headerAcceptLanguage))
		}

		req := c.Request()
		c.SetRequest(req.WithContext(context.WithValue(req.Context(), util.CTXKeyLanguage, lang)))

		return next(c)
	}
}

func languageFromContext(ctx context.Context) language.Tag {
	lang, ok := ctx.Value(util.CTXKeyLanguage).(language.Tag)
	if !ok {
		return language.Und
	}

	return lang
}

func (s *Server) getIndexHandler(c echo.Context) error {
	return s.respond(c, &page{}, nil)
}

func (s *Server) postMintHandler(c echo.Context) error {
	p := s.pageFromForm(c)

	s.Console.SubmitMint(c.Request().Context(), &p.Mint, languageFromContext(c.Request().Context()))

	return s.respond(c, p, &p.Mint)
}

func (s *Server) postBalanceHandler(c echo.Context) error {
	p := s.pageFromForm(c)

	s.Console.SubmitBalance(c.Request().Context(), &p.Balance, languageFromContext(c.Request().Context()))

	return s.respond(c, p, &p.Balance)
}

// pageFromForm restores the inputs of both forms, results are not carried over.
func (s *Server) pageFromForm(c echo.Context) *page {
	return &page{
		Mint: frontend.MintForm{
			Recipient: c.FormValue(formFieldRecipient),
			Amount:    c.FormValue(formFieldAmount),
		},
		Balance: frontend.BalanceForm{
			Address: c.FormValue(formFieldAddress),
		},
	}
}

// respond renders the page or, if the client prefers JSON, the submitted form.
// Backend failures are part of the form result, the console always answers 200.
func (s *Server) respond(c echo.Context, p *page, submitted interface{}) error {
	if wantsJSON(c) {
		if submitted == nil {
			return c.JSON(http.StatusOK, echo.Map{"mint": p.Mint, "balance": p.Balance})
		}
		return c.JSON(http.StatusOK, submitted)
	}

	p.Lang = languageFromContext(c.Request().Context())
	p.i18n = s.I18n

	return c.Render(http.StatusOK, templateIndex, p)
}

func wantsJSON(c echo.Context) bool {
	header := c.Request().Header.Get(echo.HeaderAccept)
	if len(header) == 0 {
		return false
	}

	ctype, err := accept.Negotiate(header, echo.MIMETextHTML, echo.MIMEApplicationJSON)
	if err != nil {
		util.LogFromContext(c.Request().Context()).Debug().Err(err).Str("accept", header).Msg("Failed to negotiate content type")
		return false
	}

	return ctype == echo.MIMEApplicationJSON
}
