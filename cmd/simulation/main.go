// Command simulation walks one full visitor session through the core
// services and prints every render decision, without starting the HTTP
// server. Useful for eyeballing the gating rules and conversion output.
package main

import (
	"context"
	"fmt"
	"time"

	"jf-travels-be/internal/dto"
	"jf-travels-be/internal/entity"
	"jf-travels-be/internal/pkg/logger"
	"jf-travels-be/internal/repository/memory"
	"jf-travels-be/internal/service"
	"jf-travels-be/pkg/exchange"
	"jf-travels-be/pkg/identity"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
)

// repoRoleLookup resolves admin status straight from the user fixtures so
// the simulation does not need the HTTP endpoint.
type repoRoleLookup struct {
	users *memory.UserRepository
}

func (r *repoRoleLookup) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := r.users.FindByEmail(ctx, email)
	if err != nil || user == nil {
		return false, err
	}
	return user.Role == entity.UserRoleAdmin, nil
}

func main() {
	header := color.New(color.FgCyan, color.Bold)
	ok := color.New(color.FgGreen)
	warn := color.New(color.FgYellow)

	sysLogger := logger.NewZapLogger("simulation.log", false)
	rates := memory.DefaultRates()
	converter := exchange.NewConverter(rates)
	userRepo := memory.NewUserRepository(memory.SeedUsers())

	provider := identity.NewGoChannelProvider(sysLogger)
	defer provider.Close()

	sessions := service.NewSessionService(provider, &repoRoleLookup{users: userRepo}, converter, "USD", sysLogger)
	nav := service.NewNavigationService(sessions, nil, sysLogger)
	sessions.BindNavigator(nav)

	if err := sessions.Start(); err != nil {
		warn.Printf("identity subscription failed: %v\n", err)
		return
	}
	defer sessions.Stop()

	show := func(label string, instr dto.RenderInstruction) {
		fmt.Printf("%-28s requested=%-12s rendered=%-12s chrome=%-5v currency=%s\n",
			label, instr.RequestedView, instr.View, instr.ShowChrome, instr.SelectedCurrency)
	}

	header.Println("== Anonymous browsing ==")
	show("home", nav.Navigate("home", nil))
	show("tours (Greece)", nav.Navigate("tours", &entity.PagePayload{FilterCountry: "Greece"}))
	show("tour-details, no tour id", nav.Navigate("tour-details", nil))
	show("dashboard while signed out", nav.Navigate("dashboard", nil))

	header.Println("== Currency conversion ==")
	amount, _ := converter.Convert(decimal.NewFromInt(100), "USD", "NGN")
	ok.Printf("100 USD -> %s\n", converter.Format(amount, "NGN"))
	if err := sessions.SelectCurrency("NGN"); err == nil {
		show("render after NGN selected", nav.Resolve())
	}

	header.Println("== Sign-in ==")
	provider.SignIn(&identity.UserRecord{Identity: "sim-admin", Email: "admin@jftravels.com"})
	time.Sleep(100 * time.Millisecond) // let the subscription + role lookup settle
	show("dashboard while signed in", nav.Navigate("dashboard", nil))
	if nav.Resolve().IsAdmin {
		ok.Println("admin role resolved")
	}

	header.Println("== Logout ==")
	sessions.Logout(context.Background())
	show("render after logout", nav.Resolve())

	ok.Println("simulation complete")
}
