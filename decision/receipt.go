package decision

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ReceiptSigner issues tamper-evident HS256 receipts for decisions so
// downstream consumers can verify which engine produced a decision and
// under which policy version.
type ReceiptSigner struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// ReceiptClaims are the verified facts carried by a receipt.
type ReceiptClaims struct {
	EvaluationID  string
	Kind          Kind
	ReasonCode    string
	PolicyID      string
	PolicyVersion int
}

func NewReceiptSigner(secret, issuer string) *ReceiptSigner {
	return &ReceiptSigner{
		secret: []byte(secret),
		issuer: issuer,
		now:    time.Now,
	}
}

// Sign produces a receipt token for one audit entry.
func (s *ReceiptSigner) Sign(entry AuditEntry) (string, error) {
	claims := jwt.MapClaims{
		"iss":           s.issuer,
		"iat":           s.now().Unix(),
		"evaluation_id": entry.EvaluationID,
		"kind":          string(entry.Kind),
		"reason_code":   entry.ReasonCode,
	}
	if entry.PolicyID != nil {
		claims["policy_id"] = *entry.PolicyID
	}
	if entry.PolicyVersion != nil {
		claims["policy_version"] = *entry.PolicyVersion
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("decision: sign receipt: %w", err)
	}
	return signed, nil
}

// Verify validates a receipt token and returns its claims.
func (s *ReceiptSigner) Verify(tokenString string) (ReceiptClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return ReceiptClaims{}, fmt.Errorf("decision: parse receipt: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return ReceiptClaims{}, fmt.Errorf("decision: invalid receipt")
	}

	out := ReceiptClaims{}
	if v, ok := claims["evaluation_id"].(string); ok {
		out.EvaluationID = v
	}
	if out.EvaluationID == "" {
		return ReceiptClaims{}, fmt.Errorf("decision: missing evaluation id in receipt")
	}
	if v, ok := claims["kind"].(string); ok {
		out.Kind = Kind(v)
	}
	if v, ok := claims["reason_code"].(string); ok {
		out.ReasonCode = v
	}
	if v, ok := claims["policy_id"].(string); ok {
		out.PolicyID = v
	}
	if v, ok := claims["policy_version"].(float64); ok {
		out.PolicyVersion = int(v)
	}
	return out, nil
}
