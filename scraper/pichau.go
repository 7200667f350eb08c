package scraper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

func extractPichau(doc *goquery.Document) (Extraction, error) {
	var ex Extraction

	ex.Name = strings.TrimSpace(doc.Find("h1.mui-1ri6pu6-product_info_title").First().Text())
	if ex.Name == "" {
		return Extraction{}, errors.New("pichau: product name not found")
	}

	priceText := strings.TrimSpace(doc.Find("div.mui-1jk88bq-price_vista-extraSpacePriceVista").First().Text())
	if priceText != "" {
		price, err := ParsePrice(priceText)
		if err != nil {
			return Extraction{}, fmt.Errorf("pichau: %w", err)
		}
		ex.Price = price
	} else {
		if doc.Find("span.mui-1nlpwp-availability-outOfStock").Length() == 0 {
			return Extraction{}, errors.New("pichau: neither price nor sold-out marker found")
		}
		// sold out, price stays 0
	}

	ex.Image, _ = doc.Find("img.iiz__img").First().Attr("src")

	return ex, nil
}
