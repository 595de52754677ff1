package store

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"leafline/internal/domain"
	"leafline/internal/fixtures"
)

// SeedIfEmpty populates any absent collection with generated demo data.
// Collections that already hold records are left untouched, so the store
// keeps durable identity across restarts. Safe to run on every start.
func (s *Store) SeedIfEmpty(gen *fixtures.Generator) error {
	inv, err := s.LoadInventory()
	if err != nil {
		return err
	}
	if len(inv) == 0 {
		inv = gen.Inventory(48)
		log.Printf("[seed] generated %d inventory records", len(inv))
		if err := s.SaveInventory(inv); err != nil {
			return err
		}
	}

	users, err := s.LoadUsers()
	if err != nil {
		return err
	}
	if len(users) == 0 {
		users = seedStaff()
		users = append(users, gen.Customers(20)...)
		log.Printf("[seed] registered %d users", len(users))
		if err := s.SaveUsers(users); err != nil {
			return err
		}
	}

	completed, err := s.LoadCompletedOrders()
	if err != nil {
		return err
	}
	if len(completed) == 0 {
		completed = gen.HistoricalOrders(30, inv, users)
		log.Printf("[seed] generated %d historical orders", len(completed))
		if err := s.SaveCompletedOrders(completed); err != nil {
			return err
		}
	}

	reel, err := s.LoadReel()
	if err != nil {
		return err
	}
	if len(reel) == 0 {
		if err := s.SaveReel(gen.Reel()); err != nil {
			return err
		}
	}
	return nil
}

// seedStaff returns the fixed demo accounts: one admin and two cashiers.
func seedStaff() []domain.User {
	mk := func(id, email, first, last, role, raw string) domain.User {
		h, _ := bcrypt.GenerateFromPassword([]byte(raw), 12)
		return domain.User{ID: id, Email: email, FirstName: first, LastName: last, Hash: string(h), Role: role}
	}
	return []domain.User{
		mk("u-admin", "admin@leafline.test", "Ada", "Moss", "ADMIN", "Passw0rd!"),
		mk("u-june", "june@leafline.test", "June", "Reyes", "USER", "Passw0rd!"),
		mk("u-theo", "theo@leafline.test", "Theo", "Park", "USER", "Passw0rd!"),
	}
}
