package service

import (
	"errors"
	"os"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"travelku_backend/internals/features/travel/payments/model"
)

var SnapClient snap.Client

// InitMidtrans must be called once during bootstrap. The environment defaults
// to Sandbox; set MIDTRANS_ENV=production for live keys.
func InitMidtrans(serverKey string) {
	env := midtrans.Sandbox
	if os.Getenv("MIDTRANS_ENV") == "production" {
		env = midtrans.Production
	}
	SnapClient.New(serverKey, env)
}

// CustomerInput carries the payer details Midtrans shows on the Snap page.
type CustomerInput struct {
	Name  string
	Email string
}

// GenerateSnapToken creates a Snap transaction for a stored payment row and
// returns the token plus the hosted checkout URL.
func GenerateSnapToken(p model.PaymentModel, cust CustomerInput, itemName string) (string, string, error) {
	if p.PaymentAmount <= 0 {
		return "", "", errors.New("invalid payment amount")
	}
	if p.PaymentOrderID == "" {
		return "", "", errors.New("payment order id is required")
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  p.PaymentOrderID,
			GrossAmt: p.PaymentAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: cust.Name,
			Email: cust.Email,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    p.PaymentOrderID,
				Price: p.PaymentAmount,
				Qty:   1,
				Name:  truncate(itemName, 50),
			},
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n]
}
