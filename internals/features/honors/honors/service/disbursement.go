package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/iris"
	"gorm.io/gorm"

	"wasitku_backend/internals/features/honors/honors/model"
)

// IrisPayoutClient mengirim pencairan honor lewat Midtrans Iris.
// Data rekening penerima diambil dari baris user si wasit.
type IrisPayoutClient struct {
	client iris.Client
	db     *gorm.DB
}

func NewIrisPayoutClient(db *gorm.DB, serverKey string, useProd bool) *IrisPayoutClient {
	env := midtrans.Sandbox
	if useProd {
		env = midtrans.Production
	}
	c := iris.Client{}
	c.New(serverKey, env)
	return &IrisPayoutClient{client: c, db: db}
}

type beneficiary struct {
	UserFullName    string
	UserEmail       string
	UserBankName    *string
	UserBankAccount *string
}

func (p *IrisPayoutClient) CreatePayout(ctx context.Context, h *model.Honor) (string, error) {
	var b beneficiary
	if err := p.db.WithContext(ctx).Table("users").
		Select("user_full_name, user_email, user_bank_name, user_bank_account").
		Where("user_id = ?", h.HonorWasitID).
		First(&b).Error; err != nil {
		return "", fmt.Errorf("data wasit tidak ditemukan: %w", err)
	}
	if b.UserBankName == nil || b.UserBankAccount == nil ||
		strings.TrimSpace(*b.UserBankName) == "" || strings.TrimSpace(*b.UserBankAccount) == "" {
		return "", fmt.Errorf("rekening bank wasit belum diisi")
	}

	notes := fmt.Sprintf("Honor wasit %s", h.HonorID)
	req := iris.CreatePayoutReq{
		Payouts: []iris.CreatePayoutDetailReq{
			{
				BeneficiaryName:    b.UserFullName,
				BeneficiaryAccount: *b.UserBankAccount,
				BeneficiaryBank:    strings.ToLower(*b.UserBankName),
				BeneficiaryEmail:   b.UserEmail,
				Amount:             strconv.FormatInt(h.HonorAmountIDR, 10),
				Notes:              notes,
			},
		},
	}

	res, mErr := p.client.CreatePayout(req)
	if mErr != nil {
		return "", mErr
	}
	if res == nil || len(res.Payouts) == 0 {
		return "", fmt.Errorf("respons iris kosong")
	}
	return res.Payouts[0].ReferenceNo, nil
}
