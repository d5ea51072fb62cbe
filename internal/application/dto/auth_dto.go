package dto

// LoginRequest entrada para login con las credenciales fijas del editor.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con el token JWT de sesión.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}
