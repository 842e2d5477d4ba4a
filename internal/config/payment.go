package config

type PaymentConfig struct {
	StripeSecretKey      string `yaml:"stripe_secret_key"`
	StripePublishableKey string `yaml:"stripe_publishable_key"`
	StripeWebhookSecret  string `yaml:"stripe_webhook_secret"`
	Currency             string `yaml:"currency"`
}

func loadPaymentConfig() *PaymentConfig {
	return &PaymentConfig{
		StripeSecretKey:      getEnv("STRIPE_SECRET_KEY", ""),
		StripePublishableKey: getEnv("STRIPE_PUBLISHABLE_KEY", ""),
		StripeWebhookSecret:  getEnv("STRIPE_WEBHOOK_SECRET", ""),
		Currency:             getEnv("PAYMENT_CURRENCY", "gbp"),
	}
}
