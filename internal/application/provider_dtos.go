package application

const (
	BillingTypePix        = "PIX"
	BillingTypeCreditCard = "CREDIT_CARD"

	ChargeTypeDetached    = "DETACHED"
	ChargeTypeInstallment = "INSTALLMENT"
)

type ProviderCustomer struct {
	ID      string `json:"id"`
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	CpfCnpj string `json:"cpfCnpj,omitempty"`
}

type CreateCustomerRequest struct {
	Name                 string `json:"name"`
	CpfCnpj              string `json:"cpfCnpj"`
	Email                string `json:"email"`
	Phone                string `json:"phone,omitempty"`
	MobilePhone          string `json:"mobilePhone,omitempty"`
	PostalCode           string `json:"postalCode,omitempty"`
	Address              string `json:"address,omitempty"`
	AddressNumber        string `json:"addressNumber,omitempty"`
	Province             string `json:"province,omitempty"`
	NotificationDisabled bool   `json:"notificationDisabled"`
}

type CreateCheckoutRequest struct {
	BillingTypes      []string              `json:"billingTypes"`
	ChargeTypes       []string              `json:"chargeTypes"`
	MinutesToExpire   int                   `json:"minutesToExpire"`
	ExternalReference string                `json:"externalReference"`
	Callback          CheckoutCallback      `json:"callback"`
	Items             []CheckoutItem        `json:"items"`
	CustomerData      *CheckoutCustomerData `json:"customerData,omitempty"`
	Installment       *CheckoutInstallment  `json:"installment,omitempty"`
}

type CheckoutCallback struct {
	SuccessURL string `json:"successUrl"`
	CancelURL  string `json:"cancelUrl"`
	ExpiredURL string `json:"expiredUrl"`
}

type CheckoutItem struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Quantity    int     `json:"quantity"`
	Value       float64 `json:"value"`
}

type CheckoutCustomerData struct {
	Name          string `json:"name"`
	CpfCnpj       string `json:"cpfCnpj"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
	Address       string `json:"address,omitempty"`
	AddressNumber string `json:"addressNumber,omitempty"`
	PostalCode    string `json:"postalCode,omitempty"`
	Province      string `json:"province,omitempty"`
}

type CheckoutInstallment struct {
	MaxInstallmentCount int `json:"maxInstallmentCount"`
}

type CheckoutResponse struct {
	ID     string `json:"id"`
	Link   string `json:"link,omitempty"`
	Status string `json:"status,omitempty"`
}

type CreatePaymentRequest struct {
	Customer             string                `json:"customer"`
	BillingType          string                `json:"billingType"`
	Value                float64               `json:"value,omitempty"`
	TotalValue           float64               `json:"totalValue,omitempty"`
	InstallmentCount     int                   `json:"installmentCount,omitempty"`
	DueDate              string                `json:"dueDate"`
	Description          string                `json:"description,omitempty"`
	ExternalReference    string                `json:"externalReference,omitempty"`
	CreditCard           *CreditCard           `json:"creditCard,omitempty"`
	CreditCardHolderInfo *CreditCardHolderInfo `json:"creditCardHolderInfo,omitempty"`
	RemoteIP             string                `json:"remoteIp,omitempty"`
}

type CreditCard struct {
	HolderName  string `json:"holderName"`
	Number      string `json:"number"`
	ExpiryMonth string `json:"expiryMonth"`
	ExpiryYear  string `json:"expiryYear"`
	CCV         string `json:"ccv"`
}

type CreditCardHolderInfo struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	CpfCnpj       string `json:"cpfCnpj"`
	PostalCode    string `json:"postalCode"`
	AddressNumber string `json:"addressNumber"`
	Phone         string `json:"phone,omitempty"`
}

type PaymentResponse struct {
	ID          string  `json:"id"`
	Customer    string  `json:"customer,omitempty"`
	Status      string  `json:"status"`
	Value       float64 `json:"value,omitempty"`
	InvoiceURL  string  `json:"invoiceUrl"`
	BillingType string  `json:"billingType,omitempty"`
}

type PixQRCodeResponse struct {
	EncodedImage   string `json:"encodedImage"`
	Payload        string `json:"payload"`
	ExpirationDate string `json:"expirationDate"`
}
