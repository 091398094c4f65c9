package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/500AN/rental-system/internal/service"
)

// Services bundles everything the router needs to wire handlers.
type Services struct {
	Booking   service.BookingService
	Inventory service.InventoryService
	Sale      service.SaleService
	Washing   service.WashingService
	Damage    service.DamageService
	Revenue   service.RevenueService
	Customer  service.CustomerService
	Employee  service.EmployeeService
	Location  service.LocationService
	Product   service.ProductService
}

// NewRouter builds the full API surface under the /api prefix.
func NewRouter(svcs Services) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestLogger)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	bookings := NewBookingHandler(svcs.Booking)
	api.HandleFunc("/bookings", bookings.List).Methods(http.MethodGet)
	api.HandleFunc("/bookings/due-today", bookings.ListDueToday).Methods(http.MethodGet)
	api.HandleFunc("/bookings", bookings.Create).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{id}", bookings.Get).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id}/pickup", bookings.Pickup).Methods(http.MethodPut)
	api.HandleFunc("/bookings/{id}/return", bookings.Return).Methods(http.MethodPut)

	inventory := NewInventoryHandler(svcs.Inventory)
	api.HandleFunc("/inventory", inventory.List).Methods(http.MethodGet)
	api.HandleFunc("/inventory/check-availability", inventory.CheckAvailability).Methods(http.MethodGet)

	sales := NewSaleHandler(svcs.Sale)
	api.HandleFunc("/sales", sales.List).Methods(http.MethodGet)
	api.HandleFunc("/sales", sales.Create).Methods(http.MethodPost)

	washing := NewWashingHandler(svcs.Washing)
	api.HandleFunc("/washing", washing.List).Methods(http.MethodGet)
	api.HandleFunc("/washing/alerts", washing.ListAlerts).Methods(http.MethodGet)
	api.HandleFunc("/washing/{id}/return", washing.Return).Methods(http.MethodPut)

	damage := NewDamageHandler(svcs.Damage)
	api.HandleFunc("/damage", damage.List).Methods(http.MethodGet)
	api.HandleFunc("/damage", damage.Report).Methods(http.MethodPost)
	api.HandleFunc("/damage/{id}/repair", damage.Repair).Methods(http.MethodPut)

	revenue := NewRevenueHandler(svcs.Revenue)
	api.HandleFunc("/revenue/daily", revenue.Daily).Methods(http.MethodGet)
	api.HandleFunc("/revenue/monthly", revenue.Monthly).Methods(http.MethodGet)
	api.HandleFunc("/revenue/all", revenue.All).Methods(http.MethodGet)

	customers := NewCustomerHandler(svcs.Customer)
	api.HandleFunc("/customers", customers.List).Methods(http.MethodGet)
	api.HandleFunc("/customers", customers.Create).Methods(http.MethodPost)
	api.HandleFunc("/customers/{id}", customers.Get).Methods(http.MethodGet)
	api.HandleFunc("/customers/{id}", customers.Update).Methods(http.MethodPut)
	api.HandleFunc("/customers/{id}", customers.Delete).Methods(http.MethodDelete)

	employees := NewEmployeeHandler(svcs.Employee)
	api.HandleFunc("/employees", employees.List).Methods(http.MethodGet)
	api.HandleFunc("/employees", employees.Create).Methods(http.MethodPost)

	locations := NewLocationHandler(svcs.Location)
	api.HandleFunc("/locations", locations.List).Methods(http.MethodGet)
	api.HandleFunc("/locations", locations.Create).Methods(http.MethodPost)

	products := NewProductHandler(svcs.Product)
	api.HandleFunc("/products", products.List).Methods(http.MethodGet)
	api.HandleFunc("/products/available", products.ListAvailable).Methods(http.MethodGet)
	api.HandleFunc("/products/barcode/{barcode}", products.GetByBarcode).Methods(http.MethodGet)
	api.HandleFunc("/products", products.Create).Methods(http.MethodPost)
	api.HandleFunc("/products/{id}", products.Get).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", products.Update).Methods(http.MethodPut)

	return r
}

func pathID(r *http.Request, name string) (int64, bool) {
	raw := mux.Vars(r)[name]
	id, err := parseID(raw)
	if err != nil {
		return 0, false
	}
	return id, true
}
