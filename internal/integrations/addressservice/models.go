package addressservice

// Address ответ сервиса адресов (формат ViaCEP)
type Address struct {
	ZipCode      string `json:"cep"`
	Street       string `json:"logradouro"`
	Complement   string `json:"complemento"`
	Neighborhood string `json:"bairro"`
	City         string `json:"localidade"`
	State        string `json:"uf"`

	// Erro выставляется сервисом вместо 404 для несуществующего индекса
	Erro bool `json:"erro,omitempty"`
}
