package parser

import (
	"errors"
	nurl "net/url"
	"strings"

	"github.com/advancedlogic/GoOse/pkg/goose"
	"github.com/go-shiori/go-readability"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// ErrNoContent 는 어떤 추출기로도 본문을 찾지 못한 경우다.
var ErrNoContent = errors.New("no readable content found in html")

// Article 은 HTML 에서 추출한 제목과 본문 텍스트다.
type Article struct {
	Title string
	Text  string
}

type extractor func(htmlStr string, pageURL *nurl.URL) (Article, error)

// ExtractText 는 readability → trafilatura → goose 순서로 시도해 처음 얻은 본문을 반환한다.
func ExtractText(htmlStr, pageURL string) (Article, error) {
	u, _ := nurl.Parse(pageURL)
	if u != nil && u.Host == "" {
		u = nil
	}

	var errs []error
	for _, ex := range []extractor{withReadability, withTrafilatura, withGoose} {
		article, err := ex(htmlStr, u)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		article.Text = normalizeWhitespace(article.Text)
		if article.Text != "" {
			article.Title = strings.TrimSpace(article.Title)
			return article, nil
		}
	}
	if len(errs) > 0 {
		return Article{}, errors.Join(append([]error{ErrNoContent}, errs...)...)
	}
	return Article{}, ErrNoContent
}

// main parser
func withReadability(htmlStr string, pageURL *nurl.URL) (Article, error) {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return Article{}, err
	}

	article, err := readability.FromDocument(doc, pageURL)
	if err != nil {
		return Article{}, err
	}
	return Article{Title: article.Title, Text: article.TextContent}, nil
}

func withTrafilatura(htmlStr string, pageURL *nurl.URL) (Article, error) {
	opts := trafilatura.Options{
		OriginalURL: pageURL,
	}

	result, err := trafilatura.Extract(strings.NewReader(htmlStr), opts)
	if err != nil {
		return Article{}, err
	}
	return Article{Title: result.Metadata.Title, Text: result.ContentText}, nil
}

func withGoose(htmlStr string, pageURL *nurl.URL) (Article, error) {
	link := ""
	if pageURL != nil {
		link = pageURL.String()
	}
	article, err := goose.New().ExtractFromRawHTML(htmlStr, link)
	if err != nil {
		return Article{}, err
	}
	return Article{Title: article.Title, Text: article.CleanedText}, nil
}

// normalizeWhitespace 는 줄 단위로 공백을 정리하고 빈 줄을 하나로 줄인다.
func normalizeWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			if !blank && len(out) > 0 {
				out = append(out, "")
			}
			blank = true
			continue
		}
		blank = false
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
