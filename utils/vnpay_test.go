package utils_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"managehotel/utils"
)

const testSecret = "test-secret"

func TestSignAndVerifyRoundTrip(t *testing.T) {
	params := map[string]string{
		utils.VnpTxnRef:       "BK-ABC12345",
		utils.VnpAmount:       "30000000",
		utils.VnpResponseCode: "00",
	}
	params[utils.VnpSecureHash] = utils.SignParams(testSecret, params)

	assert.True(t, utils.VerifyCallbackSignature(testSecret, params))
}

func TestVerifyCallbackSignature_Rejections(t *testing.T) {
	params := map[string]string{
		utils.VnpTxnRef:       "BK-ABC12345",
		utils.VnpResponseCode: "00",
	}

	// No hash at all.
	assert.False(t, utils.VerifyCallbackSignature(testSecret, params))

	// Forged hash.
	params[utils.VnpSecureHash] = "deadbeef"
	assert.False(t, utils.VerifyCallbackSignature(testSecret, params))

	// Valid hash, then a parameter tampered with afterwards.
	params[utils.VnpSecureHash] = utils.SignParams(testSecret, params)
	params[utils.VnpTxnRef] = "BK-EVIL0001"
	assert.False(t, utils.VerifyCallbackSignature(testSecret, params))

	// Wrong secret.
	params[utils.VnpTxnRef] = "BK-ABC12345"
	params[utils.VnpSecureHash] = utils.SignParams("other-secret", params)
	assert.False(t, utils.VerifyCallbackSignature(testSecret, params))
}

func TestVerifyCallbackSignature_CaseInsensitiveHash(t *testing.T) {
	params := map[string]string{utils.VnpTxnRef: "BK-ABC12345"}
	params[utils.VnpSecureHash] = strings.ToUpper(utils.SignParams(testSecret, params))

	assert.True(t, utils.VerifyCallbackSignature(testSecret, params))
}

func TestBuildPaymentURL(t *testing.T) {
	params := map[string]string{
		"vnp_Version":      "2.1.0",
		utils.VnpTxnRef:    "BK-ABC12345",
		utils.VnpAmount:    "30000000",
		utils.VnpOrderInfo: "Thanh toan don hang:BK-ABC12345",
	}
	u := utils.BuildPaymentURL("https://pay.example", testSecret, params)

	assert.True(t, strings.HasPrefix(u, "https://pay.example?"))
	// Params sorted by key, values URL-encoded.
	assert.Contains(t, u, "vnp_Amount=30000000&vnp_OrderInfo=Thanh+toan+don+hang%3ABK-ABC12345&vnp_TxnRef=BK-ABC12345&vnp_Version=2.1.0")
	assert.Contains(t, u, "&vnp_SecureHash="+utils.SignParams(testSecret, params))
}

func TestHashPayloadSkipsEmptyAndHashParams(t *testing.T) {
	base := map[string]string{utils.VnpTxnRef: "BK-ABC12345"}
	noisy := map[string]string{
		utils.VnpTxnRef:     "BK-ABC12345",
		utils.VnpBankCode:   "",
		utils.VnpSecureType: "HmacSHA512",
	}

	assert.Equal(t, utils.SignParams(testSecret, base), utils.SignParams(testSecret, noisy))
}
