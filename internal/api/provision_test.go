package api

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/arencloud/hestia/internal/models"
	"github.com/arencloud/hestia/internal/provisioner"
)

func TestProvisionBucket_Success(t *testing.T) {
	store := newMemStore()
	store.tenants["acme"] = models.Tenant{Key: "acme"}
	p := &fakeProvisioner{createResult: provisioner.Result{BucketName: "tenant-acme"}}
	r := setupRouter(t, store, p, "")

	w := doJSON(r, "POST", "/api/v1/tenants/acme/bucket", nil)
	if w.Code != 200 {
		t.Fatalf("provision status=%d body=%s", w.Code, w.Body.String())
	}
	var out map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out["bucket"] != "tenant-acme" || out["tenant"] != "acme" {
		t.Fatalf("unexpected response: %v", out)
	}
	if len(p.created) != 1 || p.created[0] != "acme" {
		t.Fatalf("provisioner calls: %v", p.created)
	}
}

func TestProvisionBucket_ProviderFailure(t *testing.T) {
	store := newMemStore()
	store.tenants["acme"] = models.Tenant{Key: "acme"}
	p := &fakeProvisioner{createResult: provisioner.Result{Err: fmt.Errorf("AccessDenied")}}
	r := setupRouter(t, store, p, "")

	w := doJSON(r, "POST", "/api/v1/tenants/acme/bucket", nil)
	if w.Code != 502 {
		t.Fatalf("provision failure status=%d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Error: AccessDenied") {
		t.Fatalf("expected captured error in body, got %s", w.Body.String())
	}
}

func TestProvisionBucket_HalfProvisioned(t *testing.T) {
	store := newMemStore()
	store.tenants["acme"] = models.Tenant{Key: "acme"}
	p := &fakeProvisioner{createResult: provisioner.Result{
		BucketName: "tenant-acme",
		Err:        fmt.Errorf("cors rejected"),
	}}
	r := setupRouter(t, store, p, "")

	w := doJSON(r, "POST", "/api/v1/tenants/acme/bucket", nil)
	if w.Code != 502 {
		t.Fatalf("status=%d", w.Code)
	}
	var out map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out["bucket"] != "tenant-acme" {
		t.Fatalf("expected bucket name for half-provisioned bucket, got %v", out)
	}
}

func TestProvisionBucket_TenantMissing(t *testing.T) {
	p := &fakeProvisioner{}
	r := setupRouter(t, newMemStore(), p, "")

	w := doJSON(r, "POST", "/api/v1/tenants/ghost/bucket", nil)
	if w.Code != 404 {
		t.Fatalf("status=%d", w.Code)
	}
	if len(p.created) != 0 {
		t.Fatal("provisioner called for missing tenant")
	}
}

func TestDeprovisionBucket_Success(t *testing.T) {
	store := newMemStore()
	store.tenants["acme"] = models.Tenant{Key: "acme", BucketName: "tenant-acme"}
	p := &fakeProvisioner{deleteResult: provisioner.Result{BucketName: "tenant-acme"}}
	r := setupRouter(t, store, p, "")

	w := doJSON(r, "DELETE", "/api/v1/tenants/acme/bucket", nil)
	if w.Code != 200 {
		t.Fatalf("deprovision status=%d body=%s", w.Code, w.Body.String())
	}
	if len(p.deleted) != 1 {
		t.Fatalf("provisioner calls: %v", p.deleted)
	}
}

func TestDeprovisionBucket_NoBucket(t *testing.T) {
	store := newMemStore()
	store.tenants["acme"] = models.Tenant{Key: "acme"}
	p := &fakeProvisioner{deleteResult: provisioner.Result{Err: provisioner.ErrNoBucket}}
	r := setupRouter(t, store, p, "")

	w := doJSON(r, "DELETE", "/api/v1/tenants/acme/bucket", nil)
	if w.Code != 409 {
		t.Fatalf("no-bucket status=%d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "tenant has no bucket") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestDeprovisionBucket_ProviderFailure(t *testing.T) {
	store := newMemStore()
	store.tenants["acme"] = models.Tenant{Key: "acme", BucketName: "tenant-acme"}
	p := &fakeProvisioner{deleteResult: provisioner.Result{Err: fmt.Errorf("BucketNotEmpty")}}
	r := setupRouter(t, store, p, "")

	w := doJSON(r, "DELETE", "/api/v1/tenants/acme/bucket", nil)
	if w.Code != 502 {
		t.Fatalf("provider failure status=%d", w.Code)
	}
}
