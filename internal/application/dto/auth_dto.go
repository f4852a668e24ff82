package dto

// LoginErrors errores por campo del formulario de login (vacío = sin errores).
type LoginErrors struct {
	Shop string `json:"shop,omitempty"`
}

// LoginResponse respuesta cuando el formulario de login debe mostrarse de nuevo.
type LoginResponse struct {
	Errors LoginErrors `json:"errors"`
}

// AppShellResponse datos del layout de la app embebida.
type AppShellResponse struct {
	APIKey string    `json:"apiKey"`
	Shop   string    `json:"shop"`
	Nav    []NavLink `json:"nav"`
}

// NavLink entrada del menú de navegación del admin.
type NavLink struct {
	Label string `json:"label"`
	To    string `json:"to"`
	Rel   string `json:"rel,omitempty"`
}
