package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

func TestQRCodeService_GenerateOfferQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	png, err := svc.GenerateOfferQR("GB7K2M9PQ4XA")
	require.NoError(t, err)
	require.NotEmpty(t, png)
	assert.Equal(t, pngMagic, png[:8], "output should be a PNG image")
}

func TestQRCodeService_ParseOfferQR(t *testing.T) {
	svc := NewQRCodeService(128, "L")

	payload, err := json.Marshal(QRCodeData{RedeemedCode: "GB7K2M9PQ4XA", Type: "redeemed_offer"})
	require.NoError(t, err)

	code, err := svc.ParseOfferQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, "GB7K2M9PQ4XA", code)
}

func TestQRCodeService_ParseOfferQR_RejectsWrongType(t *testing.T) {
	svc := NewQRCodeService(128, "L")

	payload, err := json.Marshal(QRCodeData{RedeemedCode: "GB7K2M9PQ4XA", Type: "gift_card"})
	require.NoError(t, err)

	_, err = svc.ParseOfferQR(string(payload))
	assert.Error(t, err)
}

func TestQRCodeService_ParseOfferQR_RejectsEmptyCode(t *testing.T) {
	svc := NewQRCodeService(128, "L")

	payload, err := json.Marshal(QRCodeData{Type: "redeemed_offer"})
	require.NoError(t, err)

	_, err = svc.ParseOfferQR(string(payload))
	assert.Error(t, err)
}

func TestQRCodeService_ParseOfferQR_RejectsGarbage(t *testing.T) {
	svc := NewQRCodeService(128, "L")

	_, err := svc.ParseOfferQR("not json at all")
	assert.Error(t, err)
}

func TestNewQRCodeService_UnknownLevelFallsBackToMedium(t *testing.T) {
	svc := NewQRCodeService(64, "ULTRA")

	png, err := svc.GenerateOfferQR("GB7K2M9PQ4XA")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
