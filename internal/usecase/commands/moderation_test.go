package commands

import (
	"context"
	"strings"
	"testing"

	"guardbot/internal/domain"
)

func TestKickReportsTargetAndReason(t *testing.T) {
	guild := &fakeGuild{member: domain.Member{ID: "u42", Username: "troublemaker"}}
	out := &fakeResponder{}
	cmd := NewKickCommand(guild)

	err := cmd.Handle(context.Background(), testContext(adminInvocation(), out,
		map[string]string{"user": "u42", "reason": "spamming"}))
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	reply := out.last()
	if !strings.Contains(reply, "<@u42>") || !strings.Contains(reply, "spamming") {
		t.Fatalf("reply = %q, want mention and reason", reply)
	}
}

func TestKickDefaultsReason(t *testing.T) {
	guild := &fakeGuild{member: domain.Member{ID: "u42"}}
	out := &fakeResponder{}
	cmd := NewKickCommand(guild)

	err := cmd.Handle(context.Background(), testContext(adminInvocation(), out,
		map[string]string{"user": "u42"}))
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if !strings.Contains(out.last(), defaultModReason) {
		t.Fatalf("reply = %q, want the default reason", out.last())
	}
}

// An unknown target is refused before any mutation is attempted.
func TestKickUnknownMember(t *testing.T) {
	guild := &fakeGuild{memberErr: domain.NewError(domain.ErrCodeNotFound, "no such member")}
	cmd := NewKickCommand(guild)

	err := cmd.Handle(context.Background(), testContext(adminInvocation(), &fakeResponder{},
		map[string]string{"user": "u42"}))
	if err != domain.ErrMemberNotFound {
		t.Fatalf("error = %v, want ErrMemberNotFound", err)
	}
	if guild.calls != 0 {
		t.Fatalf("external calls = %d, want 0", guild.calls)
	}
}

func TestKickTranslatesHierarchyRefusal(t *testing.T) {
	guild := &fakeGuild{
		member:  domain.Member{ID: "u42"},
		kickErr: domain.NewError(domain.ErrCodeForbidden, "missing permissions"),
	}
	cmd := NewKickCommand(guild)

	err := cmd.Handle(context.Background(), testContext(adminInvocation(), &fakeResponder{},
		map[string]string{"user": "u42"}))
	var dErr *domain.Error
	if !asDomainError(err, &dErr) || dErr.Code != domain.ErrCodeForbidden ||
		!strings.Contains(dErr.Message, "Kick Members") {
		t.Fatalf("error = %v, want the Kick Members hint", err)
	}
}

func TestBanReportsTarget(t *testing.T) {
	guild := &fakeGuild{member: domain.Member{ID: "u7"}}
	out := &fakeResponder{}
	cmd := NewBanCommand(guild)

	err := cmd.Handle(context.Background(), testContext(adminInvocation(), out,
		map[string]string{"user": "u7", "reason": "repeat offender"}))
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	reply := out.last()
	if !strings.Contains(reply, "Banned <@u7>") || !strings.Contains(reply, "repeat offender") {
		t.Fatalf("reply = %q", reply)
	}
}

func TestBanTranslatesHierarchyRefusal(t *testing.T) {
	guild := &fakeGuild{
		member: domain.Member{ID: "u7"},
		banErr: domain.NewError(domain.ErrCodeForbidden, "missing permissions"),
	}
	cmd := NewBanCommand(guild)

	err := cmd.Handle(context.Background(), testContext(adminInvocation(), &fakeResponder{},
		map[string]string{"user": "u7"}))
	var dErr *domain.Error
	if !asDomainError(err, &dErr) || dErr.Code != domain.ErrCodeForbidden ||
		!strings.Contains(dErr.Message, "Ban Members") {
		t.Fatalf("error = %v, want the Ban Members hint", err)
	}
}
