package testdata

// Card and buyer data accepted by the Asaas sandbox.
type TestCard struct {
	Number      string
	HolderName  string
	ExpiryMonth string
	ExpiryYear  string
	CCV         string
	Description string
}

var (
	ApprovedCard = TestCard{
		Number:      "5162306219378829",
		HolderName:  "marcelo h almeida",
		ExpiryMonth: "05",
		ExpiryYear:  "2030",
		CCV:         "318",
		Description: "Sandbox card approved on creation",
	}

	ShortNumberCard = TestCard{
		Number:      "516230",
		HolderName:  "marcelo h almeida",
		ExpiryMonth: "05",
		ExpiryYear:  "2030",
		CCV:         "318",
		Description: "Rejected locally before reaching Asaas",
	}
)

// SandboxCPF passes the CPF checksum Asaas applies.
const SandboxCPF = "249.715.637-92"
