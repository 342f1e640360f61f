package role

// Role — роль пользователя в системе, определяется один раз на запрос
type Role int

const (
	Anonymous Role = iota // неавторизованный пользователь
	Client                // клиент компании
	Employee              // сотрудник
	Responsible           // ответственный за события
	Admin                 // администратор
)

// Строковые значения типов профиля в БД
const (
	ProfileAdmin       = "ADMIN"
	ProfileEmployee    = "EMPLEADO"
	ProfileResponsible = "RESPONSABLE"
	ProfileClient      = "CLIENTE"
)

// FromProfile преобразует тип профиля из БД в типизированную роль
func FromProfile(profileType string) Role {
	switch profileType {
	case ProfileAdmin:
		return Admin
	case ProfileEmployee:
		return Employee
	case ProfileResponsible:
		return Responsible
	case ProfileClient:
		return Client
	default:
		return Anonymous
	}
}

func (r Role) String() string {
	switch r {
	case Admin:
		return "admin"
	case Responsible:
		return "responsible"
	case Employee:
		return "employee"
	case Client:
		return "client"
	default:
		return "anonymous"
	}
}
