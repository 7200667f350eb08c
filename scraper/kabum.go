package scraper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

func extractKabum(doc *goquery.Document) (Extraction, error) {
	var ex Extraction

	ex.Name = strings.TrimSpace(doc.Find("h1.text-black-800").First().Text())
	if ex.Name == "" {
		return Extraction{}, errors.New("kabum: product name not found")
	}

	priceText := strings.TrimSpace(doc.Find("h4.text-secondary-500").First().Text())
	if priceText == "" {
		priceText = strings.TrimSpace(doc.Find("b.text-secondary-500").First().Text())
	}

	if priceText != "" {
		price, err := ParsePrice(priceText)
		if err != nil {
			return Extraction{}, fmt.Errorf("kabum: %w", err)
		}
		ex.Price = price
	} else {
		soldOut := strings.ToLower(doc.Find("span.text-secondary-400").Text())
		if !strings.Contains(soldOut, "esgotado") {
			return Extraction{}, errors.New("kabum: neither price nor sold-out marker found")
		}
		// sold out, price stays 0
	}

	img, ok := doc.Find(`img[src*="/produtos/fotos/"][src$="_gg.jpg"]`).First().Attr("src")
	if !ok {
		img, _ = doc.Find(`img[src*="/produtos/fotos/sync_mirakl/"][src*="/xlarge/"]`).First().Attr("src")
	}
	ex.Image = img

	return ex, nil
}
