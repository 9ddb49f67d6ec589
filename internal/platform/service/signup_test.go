package service

import (
	"context"
	"testing"
	"time"

	"github.com/sitewatch/sitewatch/internal/platform/domain"
	"github.com/stretchr/testify/require"
)

func TestSignupCreatesSubscriptionAtomically(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	org, owner := newTestOrg(t, st, "acme")

	// The organization never exists without a subscription on the Free plan.
	sub, err := st.Subscriptions().GetSubscriptionByOrganization(ctx, org.ID)
	require.NoError(t, err)
	require.True(t, sub.Active)

	// A fresh subscription runs for the initial term and is current now.
	require.NotNil(t, sub.ExpiresAt)
	require.WithinDuration(t,
		time.Now().UTC().AddDate(0, 0, SubscriptionTermDays), *sub.ExpiresAt, time.Minute)
	require.True(t, sub.Current(time.Now().UTC()))

	plan, err := st.Plans().GetPlanByID(ctx, sub.PlanID)
	require.NoError(t, err)
	require.Equal(t, domain.FreePlanName, plan.Name)
	require.Equal(t, 3, plan.MaxUsers)
	require.Equal(t, 25, plan.MaxObservations)

	// The owner carries the full capability set.
	require.True(t, owner.Roles.Has(domain.RoleManager))
	require.True(t, owner.Roles.Has(domain.RoleObserver))
	require.True(t, owner.Roles.Has(domain.RoleActionOwner))
	require.Equal(t, org.ID, owner.OrganizationID)
}

func TestSignupDuplicateEmailLeavesNoOrphanOrganization(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	_, owner := newTestOrg(t, st, "first")

	svc := &SignupService{Store: st}
	_, err := svc.CreateOrganizationOwner(ctx, SignupInput{
		OrganizationName:   "Second Co",
		OrganizationDomain: "second.example.com",
		Email:              owner.Email,
		Password:           "irrelevant-pass",
	})
	require.ErrorIs(t, err, ErrDuplicateIdentity)

	// The rejected signup must not have written a half-provisioned tenant.
	orgs, err := st.Organizations().ListOrganizations(ctx)
	require.NoError(t, err)
	require.Len(t, orgs, 1)
}

func TestSignupDuplicateDomainRejected(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	org, _ := newTestOrg(t, st, "acme")

	svc := &SignupService{Store: st}
	_, err := svc.CreateOrganizationOwner(ctx, SignupInput{
		OrganizationName:   "Acme Clone",
		OrganizationDomain: org.Domain,
		Email:              "someone-else@clone.example.com",
		Password:           "irrelevant-pass",
	})
	require.ErrorIs(t, err, ErrDuplicateIdentity)
}

func TestSignupValidation(t *testing.T) {
	st := newTestStore(t)
	svc := &SignupService{Store: st}

	cases := []struct {
		name string
		in   SignupInput
	}{
		{"missing org name", SignupInput{OrganizationDomain: "a.example.com", Email: "a@a.example.com", Password: "long-enough"}},
		{"bad email", SignupInput{OrganizationName: "A", OrganizationDomain: "a.example.com", Email: "nope", Password: "long-enough"}},
		{"short password", SignupInput{OrganizationName: "A", OrganizationDomain: "a.example.com", Email: "a@a.example.com", Password: "short"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateOrganizationOwner(context.Background(), tc.in)
			require.ErrorIs(t, err, ErrValidation)
		})
	}
}
