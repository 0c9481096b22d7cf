// Package apitest runs an in-process fake of the SkyDesk360 API for client
// and workflow tests: the seven REST endpoints over an in-memory store, with
// hooks to inject failures.
package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"skydesk/pkg/model"
	"strconv"
	"sync"
	"time"

	"github.com/julienschmidt/httprouter"
)

type user struct {
	id       int
	fullName string
	email    string
	password string
	isAdmin  bool
}

// Server is the fake API. All exported hooks must be set before the first
// request.
type Server struct {
	*httptest.Server

	// FailBookSeat, when set, returns a non-zero HTTP status to reject a
	// book-seat call for the given unit.
	FailBookSeat func(unitID string) int

	mu            sync.Mutex
	users         map[string]*user
	bookings      map[int]model.BookingRecord
	nextUserID    int
	nextBookingID int
}

func NewServer() *Server {
	s := &Server{
		users:         map[string]*user{},
		bookings:      map[int]model.BookingRecord{},
		nextUserID:    1,
		nextBookingID: 1,
	}

	router := httprouter.New()
	router.POST("/signup", s.handleSignup)
	router.POST("/login", s.handleLogin)
	router.POST("/book-seat", s.handleBookSeat)
	router.GET("/my-bookings/:user_id", s.handleMyBookings)
	router.DELETE("/cancel-booking/:id", s.handleCancelBooking)
	router.GET("/admin/all-bookings", s.handleAllBookings)
	router.POST("/admin/create-sub-admin", s.handleCreateSubAdmin)

	s.Server = httptest.NewServer(router)
	return s
}

// SeedUser registers an account and returns its id.
func (s *Server) SeedUser(fullName, email, password string, isAdmin bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextUserID
	s.nextUserID++
	s.users[email] = &user{id: id, fullName: fullName, email: email, password: password, isAdmin: isAdmin}
	return id
}

// SeedBooking inserts a booking record directly and returns its id.
func (s *Server) SeedBooking(userID int, unitID string, category model.Category, price float64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextBookingID
	s.nextBookingID++
	s.bookings[id] = model.BookingRecord{
		ID:           id,
		UserID:       userID,
		UnitID:       unitID,
		UnitCategory: category,
		Price:        price,
		BookingDate:  time.Now().UTC(),
	}
	return id
}

// Bookings returns a copy of the current records, ordered by id.
func (s *Server) Bookings() []model.BookingRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orderedBookingsLocked()
}

func (s *Server) orderedBookingsLocked() []model.BookingRecord {
	out := make([]model.BookingRecord, 0, len(s.bookings))
	for id := 1; id < s.nextBookingID; id++ {
		if b, ok := s.bookings[id]; ok {
			out = append(out, b)
		}
	}
	return out
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "malformed body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[req.Email]; exists {
		writeDetail(w, http.StatusBadRequest, "Email already registered")
		return
	}
	id := s.nextUserID
	s.nextUserID++
	s.users[req.Email] = &user{id: id, fullName: req.FullName, email: req.Email, password: req.Password}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Signup successful"})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "malformed body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	account, ok := s.users[req.Email]
	if !ok || account.password != req.Password {
		writeDetail(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	writeJSON(w, http.StatusOK, model.LoginResponse{
		AccessToken: "test-token",
		TokenType:   "bearer",
		IsAdmin:     account.isAdmin,
		FullName:    account.fullName,
		UserID:      account.id,
	})
}

func (s *Server) handleBookSeat(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.BookSeatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "malformed body")
		return
	}

	if s.FailBookSeat != nil {
		if status := s.FailBookSeat(req.UnitID); status != 0 {
			writeDetail(w, status, "injected failure")
			return
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bookings {
		if b.UnitID == req.UnitID {
			writeDetail(w, http.StatusBadRequest, "Seat already booked")
			return
		}
	}

	id := s.nextBookingID
	s.nextBookingID++
	s.bookings[id] = model.BookingRecord{
		ID:           id,
		UserID:       req.UserID,
		UnitID:       req.UnitID,
		UnitCategory: req.UnitType,
		Price:        req.Price,
		BookingDate:  time.Now().UTC(),
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

func (s *Server) handleMyBookings(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	s.mu.Lock()
	defer s.mu.Unlock()

	owned := []model.BookingRecord{}
	for _, b := range s.orderedBookingsLocked() {
		if strconv.Itoa(b.UserID) == ps.ByName("user_id") {
			owned = append(owned, b)
		}
	}
	writeJSON(w, http.StatusOK, owned)
}

func (s *Server) handleCancelBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := strconv.Atoi(ps.ByName("id"))
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid booking id")
		return
	}
	if _, ok := s.bookings[id]; !ok {
		writeDetail(w, http.StatusNotFound, "Not found")
		return
	}
	delete(s.bookings, id)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Cancelled"})
}

func (s *Server) handleAllBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.orderedBookingsLocked())
}

func (s *Server) handleCreateSubAdmin(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.CreateSubAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "malformed body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[req.Email]; exists {
		writeDetail(w, http.StatusBadRequest, "User exists")
		return
	}
	id := s.nextUserID
	s.nextUserID++
	s.users[req.Email] = &user{id: id, fullName: req.FullName, email: req.Email, password: req.Password, isAdmin: true}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Admin created"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
