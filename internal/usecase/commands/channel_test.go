package commands

import (
	"context"
	"strings"
	"testing"

	"guardbot/internal/domain"
)

func TestChannelRenameMentionsOldName(t *testing.T) {
	guild := &fakeGuild{}
	out := &fakeResponder{}
	cmd := NewChannelRenameCommand(guild)

	err := cmd.Handle(context.Background(), testContext(adminInvocation(), out,
		map[string]string{"channel": "c1", "name": "new-name"}))
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	reply := out.last()
	if !strings.Contains(reply, "old-name") || !strings.Contains(reply, "new-name") {
		t.Fatalf("reply = %q, want both the old and the new name", reply)
	}
}

func TestChannelDeleteMentionsDeletedName(t *testing.T) {
	guild := &fakeGuild{}
	out := &fakeResponder{}
	cmd := NewChannelDeleteCommand(guild)

	err := cmd.Handle(context.Background(), testContext(adminInvocation(), out,
		map[string]string{"channel": "c1"}))
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if !strings.Contains(out.last(), "doomed") {
		t.Fatalf("reply = %q, want the deleted channel's name", out.last())
	}
}

func TestCategoryCreateReportsName(t *testing.T) {
	guild := &fakeGuild{}
	out := &fakeResponder{}
	cmd := NewCategoryCreateCommand(guild)

	err := cmd.Handle(context.Background(), testContext(adminInvocation(), out,
		map[string]string{"name": "Events"}))
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if !strings.Contains(out.last(), "Events") {
		t.Fatalf("reply = %q, want the category name", out.last())
	}
}

func TestChannelErrorTranslation(t *testing.T) {
	tests := []struct {
		name string
		in   error
		code domain.ErrorCode
	}{
		{name: "unknown channel", in: domain.NewError(domain.ErrCodeNotFound, "gone"), code: domain.ErrCodeNotFound},
		{name: "forbidden", in: domain.NewError(domain.ErrCodeForbidden, "nope"), code: domain.ErrCodeForbidden},
		{name: "transport", in: domain.NewError(domain.ErrCodeTransport, "down"), code: domain.ErrCodeTransport},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guild := &fakeGuild{channelErr: tt.in}
			cmd := NewChannelMoveCommand(guild)

			err := cmd.Handle(context.Background(), testContext(adminInvocation(), &fakeResponder{},
				map[string]string{"channel": "c1", "category": "cat1"}))
			if domain.CodeOf(err) != tt.code {
				t.Fatalf("code = %v, want %v", domain.CodeOf(err), tt.code)
			}
		})
	}

	guild := &fakeGuild{channelErr: domain.NewError(domain.ErrCodeNotFound, "gone")}
	cmd := NewChannelMoveCommand(guild)
	err := cmd.Handle(context.Background(), testContext(adminInvocation(), &fakeResponder{},
		map[string]string{"channel": "c1", "category": "cat1"}))
	if err != domain.ErrChannelNotFound {
		t.Fatalf("error = %v, want ErrChannelNotFound", err)
	}
}
