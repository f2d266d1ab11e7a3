package utils

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"net/url"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
)

// VNPay wire parameter names.
const (
	VnpAmount       = "vnp_Amount"
	VnpBankCode     = "vnp_BankCode"
	VnpIPAddr       = "vnp_IpAddr"
	VnpTxnRef       = "vnp_TxnRef"
	VnpOrderInfo    = "vnp_OrderInfo"
	VnpResponseCode = "vnp_ResponseCode"
	VnpSecureHash   = "vnp_SecureHash"
	VnpSecureType   = "vnp_SecureHashType"
)

// HmacSHA512 returns the hex digest VNPay expects for signed requests.
func HmacSHA512(key, data string) string {
	mac := hmac.New(sha512.New, []byte(key))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}

// hashPayload joins params sorted by key as key=value pairs. VNPay signs
// the URL-encoded values, so encoding here must match the query string.
func hashPayload(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if k == VnpSecureHash || k == VnpSecureType || v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(k))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(params[k]))
	}
	return sb.String()
}

// BuildPaymentURL assembles the signed redirect URL toward the gateway.
func BuildPaymentURL(payURL, secretKey string, params map[string]string) string {
	query := hashPayload(params)
	secureHash := HmacSHA512(secretKey, query)
	return payURL + "?" + query + "&" + VnpSecureHash + "=" + secureHash
}

// SignParams computes the signature the gateway would attach to params.
// Used by tests and by callback verification.
func SignParams(secretKey string, params map[string]string) string {
	return HmacSHA512(secretKey, hashPayload(params))
}

// VerifyCallbackSignature checks the vnp_SecureHash attached to a callback
// against the shared secret. Callbacks arrive unauthenticated, so nothing
// may be trusted before this passes.
func VerifyCallbackSignature(secretKey string, params map[string]string) bool {
	got := params[VnpSecureHash]
	if got == "" {
		return false
	}
	want := SignParams(secretKey, params)
	return hmac.Equal([]byte(strings.ToLower(got)), []byte(want))
}

// ClientIP resolves the caller address for the vnp_IpAddr parameter.
func ClientIP(c *gin.Context) string {
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	return "127.0.0.1"
}
