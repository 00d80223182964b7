package roles

import (
	"reflect"
	"testing"
)

func TestDeriveCaptainMembership(t *testing.T) {
	teams := []TeamRole{{TeamID: 1, Game: "valorant", Role: MemberRoleCaptain}}

	tags, primary := Derive(teams, []string{User})

	want := []string{TeamMember, TeamCaptain}
	if !reflect.DeepEqual(tags, want) {
		t.Fatalf("expected tags %v, got %v", want, tags)
	}
	if primary != TeamCaptain {
		t.Fatalf("expected primary %s, got %s", TeamCaptain, primary)
	}
}

func TestDeriveDropsTeamTagsAfterLeaving(t *testing.T) {
	tags, primary := Derive(nil, []string{TeamMember, TeamCaptain})

	if !reflect.DeepEqual(tags, []string{User}) {
		t.Fatalf("expected [USER], got %v", tags)
	}
	if primary != User {
		t.Fatalf("expected primary USER, got %s", primary)
	}
}

func TestDeriveKeepsUnrelatedTags(t *testing.T) {
	teams := []TeamRole{{TeamID: 2, Game: "dota 2", Role: MemberRoleMember}}

	tags, primary := Derive(teams, []string{TournamentParticipant})

	want := []string{TournamentParticipant, TeamMember}
	if !reflect.DeepEqual(tags, want) {
		t.Fatalf("expected tags %v, got %v", want, tags)
	}
	if primary != TeamMember {
		t.Fatalf("expected primary TEAM_MEMBER, got %s", primary)
	}
}

func TestDeriveRemovesUserAlongsideSpecializedTags(t *testing.T) {
	teams := []TeamRole{{TeamID: 3, Game: "cs2", Role: MemberRoleMember}}

	tags, _ := Derive(teams, []string{User})

	for _, tag := range tags {
		if tag == User {
			t.Fatalf("USER must not coexist with specialized tags, got %v", tags)
		}
	}
}

func TestDeriveIdempotent(t *testing.T) {
	teams := []TeamRole{
		{TeamID: 1, Game: "valorant", Role: MemberRoleCaptain},
		{TeamID: 2, Game: "dota 2", Role: MemberRoleAdmin},
	}

	first, firstPrimary := Derive(teams, []string{User, TournamentParticipant})
	second, secondPrimary := Derive(teams, first)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("derivation not idempotent: %v then %v", first, second)
	}
	if firstPrimary != secondPrimary {
		t.Fatalf("primary not stable: %s then %s", firstPrimary, secondPrimary)
	}
}

func TestPrimaryPrecedence(t *testing.T) {
	cases := []struct {
		tags []string
		want string
	}{
		{[]string{TeamMember, TeamCaptain, TeamAdmin}, TeamAdmin},
		{[]string{TeamCaptain, Admin}, Admin},
		{[]string{TournamentParticipant, Player}, Player},
		{[]string{User}, User},
		{[]string{"MODERATOR"}, User},
		{nil, User},
	}
	for _, tc := range cases {
		if got := Primary(tc.tags); got != tc.want {
			t.Fatalf("Primary(%v) = %s, want %s", tc.tags, got, tc.want)
		}
	}
}
