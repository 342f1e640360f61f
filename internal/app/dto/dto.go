package dto

import "time"

// ============ Общие структуры ============

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ============ Каталог (Products) ============

type ProductTypeResponse struct {
	ID          uint   `json:"id"`
	Description string `json:"description"`
}

type CreateProductTypeRequest struct {
	Description string `json:"description" binding:"required,max=100"`
}

type ProductResponse struct {
	ID            uint    `json:"id"`
	ProductTypeID uint    `json:"product_type_id"`
	ProductType   string  `json:"product_type"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	Available     bool    `json:"available"`
	ImageURL      string  `json:"image_url"`
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int               `json:"total"`
}

type CreateProductRequest struct {
	ProductTypeID uint    `json:"product_type_id" binding:"required"`
	Description   string  `json:"description" binding:"required,max=200"`
	Price         float64 `json:"price" binding:"required,gt=0"`
	Available     *bool   `json:"available"`
}

type UpdateProductRequest struct {
	ProductTypeID uint     `json:"product_type_id"`
	Description   string   `json:"description"`
	Price         *float64 `json:"price" binding:"omitempty,gt=0"`
	Available     *bool    `json:"available"`
}

// ============ Клиенты (Clients) ============

type ClientResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Surname   string `json:"surname"`
	DocType   string `json:"doc_type"`
	DocNumber string `json:"doc_number"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	Province  string `json:"province,omitempty"`
	Barrio    string `json:"barrio,omitempty"`
	BirthDate string `json:"birth_date,omitempty"`
	HasUser   bool   `json:"has_user"`
}

type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
	Total   int              `json:"total"`
}

type CreateClientRequest struct {
	Name       string `json:"name" binding:"required,max=100"`
	Surname    string `json:"surname" binding:"required,max=100"`
	DocType    string `json:"doc_type" binding:"required,oneof=DNI CUIL PASAPORTE"`
	DocNumber  string `json:"doc_number" binding:"required,max=20"`
	Email      string `json:"email" binding:"required,email"`
	Address    string `json:"address"`
	ProvinceID *uint  `json:"province_id"`
	BarrioID   *uint  `json:"barrio_id"`
	BirthDate  string `json:"birth_date"` // формат 2006-01-02
	CreateUser bool   `json:"create_user"`
}

type UpdateClientRequest struct {
	Name       string `json:"name"`
	Surname    string `json:"surname"`
	Email      string `json:"email" binding:"omitempty,email"`
	Address    string `json:"address"`
	ProvinceID *uint  `json:"province_id"`
	BarrioID   *uint  `json:"barrio_id"`
	BirthDate  string `json:"birth_date"`
}

type ProvinceResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

type BarrioResponse struct {
	ID         uint   `json:"id"`
	ProvinceID uint   `json:"province_id"`
	Name       string `json:"name"`
}

// ============ Ответственные (Responsibles) ============

type ResponsibleResponse struct {
	ID       uint   `json:"id"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

type CreateResponsibleRequest struct {
	FullName string `json:"full_name" binding:"required,max=200"`
	Phone    string `json:"phone"`
	Email    string `json:"email" binding:"omitempty,email"`
	UserID   *uint  `json:"user_id"`
}

// ============ События (Events) ============

type EventResponse struct {
	ID             uint               `json:"id"`
	ClientID       uint               `json:"client_id"`
	Client         string             `json:"client"`
	ResponsibleID  uint               `json:"responsible_id"`
	Responsible    string             `json:"responsible"`
	EventType      string             `json:"event_type"`
	Date           string             `json:"date"`
	Time           string             `json:"time"`
	Location       string             `json:"location"`
	Headcount      int                `json:"headcount"`
	Status         string             `json:"status"`
	TotalPrice     float64            `json:"total_price"`
	PricePerPerson float64            `json:"price_per_person"`
	Deposit        DepositResponse    `json:"deposit"`
	Invoice        *InvoiceResponse   `json:"invoice,omitempty"`
	Menu           []MenuLineResponse `json:"menu,omitempty"` // только для GET одного события
}

type EventListResponse struct {
	Events []EventResponse `json:"events"`
	Total  int             `json:"total"`
}

type CreateEventRequest struct {
	ClientID      uint   `json:"client_id"` // игнорируется для роли клиента
	ResponsibleID uint   `json:"responsible_id" binding:"required"`
	EventType     string `json:"event_type" binding:"required,oneof=CASAMIENTO CUMPLEANOS EVENTO_COMERCIAL OTRO"`
	Date          string `json:"date" binding:"required"` // формат 2006-01-02
	Time          string `json:"time" binding:"required"` // формат 15:04
	Location      string `json:"location" binding:"required,max=300"`
	Headcount     int    `json:"headcount" binding:"required,gt=0"`
}

type UpdateEventRequest struct {
	EventType string `json:"event_type" binding:"omitempty,oneof=CASAMIENTO CUMPLEANOS EVENTO_COMERCIAL OTRO"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Location  string `json:"location"`
	Headcount *int   `json:"headcount" binding:"omitempty,gt=0"`
}

type UpdateEventStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=SOLICITADO CONFIRMADO EN_PROCESO FINALIZADO CANCELADO VENCIDO"`
}

type AvailabilityResponse struct {
	Date      string `json:"date"`
	Available bool   `json:"available"`
	Count     int    `json:"count"`
	Capacity  int    `json:"capacity"`
}

type InvoiceResponse struct {
	ID             uint    `json:"id"`
	OrderDate      string  `json:"order_date"`
	TotalProducts  float64 `json:"total_products"`
	TotalService   float64 `json:"total_service"`
	PricePerPerson float64 `json:"price_per_person"`
	ValidUntil     string  `json:"valid_until"`
}

// ============ Меню (Menu Lines) ============

type AddMenuLineRequest struct {
	ProductTypeID uint `json:"product_type_id" binding:"required"`
	ProductID     uint `json:"product_id" binding:"required"`
	Quantity      int  `json:"quantity" binding:"required,gt=0"`
}

type UpdateMenuLineRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

type MenuLineResponse struct {
	ID          uint    `json:"id"`
	ProductType string  `json:"product_type"`
	ProductID   uint    `json:"product_id"`
	Product     string  `json:"product"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	LineTotal   float64 `json:"line_total"`
}

type MenuResponse struct {
	EventID       uint               `json:"event_id"`
	Lines         []MenuLineResponse `json:"lines"`
	TotalProducts float64            `json:"total_products"`
}

// ============ Сенья (Deposit) ============

type UpdateDepositRequest struct {
	HasDeposit *bool    `json:"has_deposit" binding:"required"`
	Amount     *float64 `json:"amount"`
	Date       string   `json:"date"` // формат 2006-01-02
	Notes      string   `json:"notes" binding:"max=500"`
}

type DepositResponse struct {
	HasDeposit      bool     `json:"has_deposit"`
	Amount          *float64 `json:"amount,omitempty"`
	Date            string   `json:"date,omitempty"`
	Notes           string   `json:"notes,omitempty"`
	SuggestedAmount float64  `json:"suggested_amount"` // 30% от стоимости сервиса
}

// ============ Персонал (Staff) ============

type StaffResponse struct {
	ID       uint   `json:"id"`
	Kind     string `json:"kind"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Status   string `json:"status"`
}

type StaffListResponse struct {
	Staff []StaffResponse `json:"staff"`
	Total int             `json:"total"`
}

type CreateStaffRequest struct {
	Kind     string `json:"kind" binding:"required,oneof=MOZO COCINERO ASISTENTE SUPERVISOR"`
	FullName string `json:"full_name" binding:"required,max=200"`
	Phone    string `json:"phone"`
	Email    string `json:"email" binding:"omitempty,email"`
}

type UpdateStaffRequest struct {
	Kind     string `json:"kind" binding:"omitempty,oneof=MOZO COCINERO ASISTENTE SUPERVISOR"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Email    string `json:"email" binding:"omitempty,email"`
	Status   string `json:"status" binding:"omitempty,oneof=ACTIVO INACTIVO VACACIONES LICENCIA"`
}

// ============ Назначения (Staff Services) ============

type AssignStaffRequest struct {
	StaffMemberID uint `json:"staff_member_id" binding:"required"`
	PeopleCount   int  `json:"people_count" binding:"omitempty,gte=1"`
}

type ServiceResponse struct {
	ID            uint      `json:"id"`
	EventID       uint      `json:"event_id"`
	StaffMemberID uint      `json:"staff_member_id"`
	StaffMember   string    `json:"staff_member"`
	PeopleCount   int       `json:"people_count"`
	Status        string    `json:"status"`
	AssignedAt    time.Time `json:"assigned_at"`
}

type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
	Total    int               `json:"total"`
}

type UpdateServiceStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=ASIGNADO EN_SERVICIO COMPLETADO CANCELADO"`
}

// ============ Пользователи (Users) ============

type UserResponse struct {
	ID       uint   `json:"id"`
	Login    string `json:"login"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type RegisterRequest struct {
	Login       string `json:"login" binding:"required,min=3,max=50"`
	Password    string `json:"password" binding:"required,min=6"`
	FullName    string `json:"full_name" binding:"required"`
	Email       string `json:"email" binding:"omitempty,email"`
	ProfileType string `json:"profile_type" binding:"omitempty,oneof=ADMIN EMPLEADO RESPONSABLE CLIENTE"`
}

type UpdateUserRequest struct {
	FullName string `json:"full_name"`
	Password string `json:"password" binding:"omitempty,min=6"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
