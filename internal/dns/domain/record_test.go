package domain

import "testing"

func TestNewResourceRecordCanonicalizesOwner(t *testing.T) {
	rr, err := NewResourceRecord("WWW.Example.COM.", RRTypeA, RRClassIN, 300, []byte{192, 0, 2, 1}, "192.0.2.1")
	if err != nil {
		t.Fatalf("NewResourceRecord: %v", err)
	}
	if rr.Name != "www.example.com" {
		t.Errorf("Name = %q, want www.example.com", rr.Name)
	}
	if rr.TTL != 300 {
		t.Errorf("TTL = %d, want 300", rr.TTL)
	}
}

func TestResourceRecordValidate(t *testing.T) {
	tests := []struct {
		name    string
		rr      ResourceRecord
		wantErr bool
	}{
		{
			name: "valid",
			rr:   ResourceRecord{Name: "example.com", Type: RRTypeA, Class: RRClassIN, Data: []byte{1, 2, 3, 4}},
		},
		{
			name:    "empty name",
			rr:      ResourceRecord{Type: RRTypeA, Class: RRClassIN, Data: []byte{1}},
			wantErr: true,
		},
		{
			name:    "bad type",
			rr:      ResourceRecord{Name: "example.com", Type: 9999, Class: RRClassIN, Data: []byte{1}},
			wantErr: true,
		},
		{
			name:    "bad class",
			rr:      ResourceRecord{Name: "example.com", Type: RRTypeA, Class: 9999, Data: []byte{1}},
			wantErr: true,
		},
		{
			name:    "no payload",
			rr:      ResourceRecord{Name: "example.com", Type: RRTypeA, Class: RRClassIN},
			wantErr: true,
		},
		{
			name: "OPT may sit at the root",
			rr:   ResourceRecord{Name: "", Type: RRTypeOPT, Class: RRClassIN, Data: []byte{0}},
		},
	}
	for _, tt := range tests {
		err := tt.rr.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: Validate() = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestResourceRecordString(t *testing.T) {
	rr := ResourceRecord{Name: "example.com", Type: RRTypeMX, Class: RRClassIN, TTL: 3600, Text: "10 mail.example.com."}
	want := "example.com. 3600 IN MX 10 mail.example.com."
	if got := rr.String(); got != want {
		t.Errorf("String = %q, want %q", got, want)
	}
}
