package scraper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

func extractTerabyte(doc *goquery.Document) (Extraction, error) {
	var ex Extraction

	ex.Name = strings.TrimSpace(doc.Find("h1.tit-prod").First().Text())
	if ex.Name == "" {
		return Extraction{}, errors.New("terabyte: product name not found")
	}

	priceText := strings.TrimSpace(doc.Find("p#valVista").First().Text())
	if priceText != "" {
		price, err := ParsePrice(priceText)
		if err != nil {
			return Extraction{}, fmt.Errorf("terabyte: %w", err)
		}
		ex.Price = price
	} else {
		soldOut := false
		doc.Find("h2").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			if strings.Contains(s.Text(), "Produto Indisponível") {
				soldOut = true
				return false
			}
			return true
		})
		if !soldOut {
			return Extraction{}, errors.New("terabyte: neither price nor sold-out marker found")
		}
		// sold out, price stays 0
	}

	ex.Image, _ = doc.Find("img.zoomImg").First().Attr("src")

	return ex, nil
}
