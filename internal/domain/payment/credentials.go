package payment

// Credentials is the decrypted paymentCreds bundle. Each gateway kind has its own variant
// so the required fields are fixed per gateway.
type Credentials interface {
	Gateway() Gateway
	isCredentials()
}

type CardCredentials struct {
	PublishableKey string
	ClientSecret   string
	AccountID      *string
}

func (CardCredentials) Gateway() Gateway { return GatewayCard }
func (CardCredentials) isCredentials()   {}

type WalletCredentials struct {
	RedirectURL string
	MerchantRef *string
}

func (WalletCredentials) Gateway() Gateway { return GatewayWallet }
func (WalletCredentials) isCredentials()   {}
