package example

type Role string

const (
	RoleOwner Role = "OWNER"
	RoleUser  Role = "USER"
)

type Provider string

const (
	ProviderOpenAI Provider = "openai"
)

type AuthType string

const (
	AuthTypeBasic AuthType = "basic"
)

type Profile struct {
	Name string
	Role Role
}

type APIKey struct {
	Provider Provider
}

type Integration struct {
	AuthType AuthType
}

func bad() {
	p := &Profile{}
	p.Role = "ADMIN" // want "enum field Role assigned string literal"

	k := &APIKey{}
	k.Provider = "mistral" // want "enum field Provider assigned string literal"

	_ = Integration{AuthType: "oauth"} // want "enum field AuthType assigned string literal"
}

func good() {
	p := &Profile{Name: "plain string fields are fine"}
	p.Role = RoleOwner

	k := &APIKey{Provider: ProviderOpenAI}
	_ = k

	_ = Integration{AuthType: AuthTypeBasic}
}

func alsoGood() {
	// Variable, not literal
	role := RoleUser
	p := &Profile{Role: role}
	_ = p
}
