// mkfixture writes synthetic parsed-bill JSON fixtures for demos and tests.
// Usage: go run ./cmd/mkfixture --out testdata
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/gyeh/billaudit/internal/model"
)

func f64(v float64) *float64 { return &v }

func invoiceNumber() string {
	return "INV-" + strings.ToUpper(uuid.NewString()[:8])
}

func cleanBill() *model.ParsedBill {
	return &model.ParsedBill{
		TotalAmount:   f64(284),
		Subtotal:      f64(284),
		TaxAmount:     f64(0),
		InvoiceNumber: invoiceNumber(),
		PatientName:   "John Doe",
		BillDate:      "2024-01-15",
		Region:        "US",
		Currency:      "USD",
		LineItems: []model.LineItem{
			{Code: "99213", Description: "Office Visit - Established Patient", Quantity: f64(1), UnitPrice: f64(150), Total: 150},
			{Code: "85025", Description: "Complete Blood Count (CBC)", Quantity: f64(1), UnitPrice: f64(45), Total: 45},
			{Code: "80053", Description: "Comprehensive Metabolic Panel", Quantity: f64(1), UnitPrice: f64(89), Total: 89},
		},
	}
}

func duplicateBill() *model.ParsedBill {
	b := cleanBill()
	b.InvoiceNumber = invoiceNumber()
	b.LineItems = append(b.LineItems,
		model.LineItem{Code: "85025", Description: "Complete Blood Count (CBC)", Quantity: f64(1), UnitPrice: f64(45), Total: 45})
	b.Subtotal = f64(329)
	b.TotalAmount = f64(329)
	return b
}

func overchargeBill() *model.ParsedBill {
	return &model.ParsedBill{
		TotalAmount:   f64(500),
		Subtotal:      f64(500),
		InvoiceNumber: invoiceNumber(),
		PatientName:   "Jane Smith",
		BillDate:      "2024-02-03",
		Region:        "US",
		Currency:      "USD",
		LineItems: []model.LineItem{
			{Code: "99214", Description: "Office visit, moderate complexity", Quantity: f64(1), UnitPrice: f64(500), Total: 500},
		},
	}
}

func indiaBill() *model.ParsedBill {
	return &model.ParsedBill{
		TotalAmount:   f64(185000),
		Subtotal:      f64(185000),
		InvoiceNumber: invoiceNumber(),
		PatientName:   "Ramesh Kumar",
		BillDate:      "2024-03-20",
		Currency:      "INR",
		HospitalType:  "corporate",
		City:          "Mumbai",
		LineItems: []model.LineItem{
			{Description: "Laparoscopic Cholecystectomy", Quantity: f64(1), Total: 180000},
			{Description: "Specialist Consultation", Quantity: f64(1), Total: 5000},
		},
	}
}

func main() {
	out := flag.String("out", "testdata", "output directory")
	flag.Parse()

	if err := os.MkdirAll(*out, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "create output dir: %v\n", err)
		os.Exit(1)
	}

	fixtures := map[string]*model.ParsedBill{
		"bill_clean.json":      cleanBill(),
		"bill_duplicate.json":  duplicateBill(),
		"bill_overcharge.json": overchargeBill(),
		"bill_india.json":      indiaBill(),
	}

	for name, bill := range fixtures {
		data, err := json.MarshalIndent(bill, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "encode %s: %v\n", name, err)
			os.Exit(1)
		}
		path := filepath.Join(*out, name)
		if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "write %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", path)
	}
}
