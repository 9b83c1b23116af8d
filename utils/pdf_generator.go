package utils

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"freightdash/models"
)

// GenerateBOLPDF renders the bill of lading for a shipment as a PDF. Two
// copies are produced, one for the shipper and one for the carrier, each kept
// whole on its page.
func GenerateBOLPDF(shipment *models.Shipment) ([]byte, error) {
	if shipment == nil {
		return nil, nil
	}

	temp := ""
	if shipment.Temperature.Min != 0 || shipment.Temperature.Max != 0 {
		temp = fmt.Sprintf("%d°F - %d°F", shipment.Temperature.Min, shipment.Temperature.Max)
	}

	copyTitles := []string{"Shipper Copy", "Carrier Copy"}

	tmpl, err := template.ParseFiles("templates/bol_template.html")
	if err != nil {
		return nil, err
	}

	var fullHTML bytes.Buffer
	for _, title := range copyTitles {
		data := models.BOLPDFData{
			Shipment:      shipment,
			GeneratedDate: time.Now().Format("02-Jan-2006"),
			Temperature:   temp,
			DeclaredValue: NumberToCurrencyWords(shipment.Billed),
			CopyTitle:     title,
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return nil, err
		}

		fullHTML.WriteString("<div class='bol-copy'>")
		fullHTML.Write(buf.Bytes())
		fullHTML.WriteString("</div>")
	}

	finalHTML := `
		<!DOCTYPE html>
		<html>
		<head>
		<meta charset="UTF-8">
		<style>
		@page {
			size: Letter;
			margin: 20px;
		}
		body {
			font-family: Arial, Helvetica, sans-serif;
			font-size: 12px;
			margin: 0;
			padding: 0;
		}
		.bol-copy {
			page-break-inside: avoid;
			border: none;
		}
		.bol-copy:not(:last-child) {
			page-break-after: always;
		}
		</style>
		</head>
		<body>` + fullHTML.String() + `</body></html>`

	tmpDir := os.TempDir()
	tmpHTML := filepath.Join(tmpDir, "bol_"+time.Now().Format("20060102150405")+".html")
	if err := os.WriteFile(tmpHTML, []byte(finalHTML), 0644); err != nil {
		return nil, err
	}
	defer os.Remove(tmpHTML)

	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuf []byte
	fileURL := "file://" + tmpHTML

	err = chromedp.Run(ctx,
		chromedp.Navigate(fileURL),
		chromedp.Sleep(1*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.5).
				WithPaperHeight(11).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}

	return pdfBuf, nil
}
