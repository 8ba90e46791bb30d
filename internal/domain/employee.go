package domain

type Employee struct {
	Registration int32  `json:"registration"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	CPF          string `json:"cpf"`
	Role         string `json:"role"`
	Age          int32  `json:"age"`
}
