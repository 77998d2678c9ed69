package provider

import (
	"testing"

	"github.com/google/uuid"
)

func TestProvider_BeforeCreate(t *testing.T) {
	type fields struct {
		ID   string
		Name string
		Slug string
	}

	tests := []struct {
		name    string
		fields  fields
		wantErr bool
	}{
		{
			name: "SuccessIDNotSet",
			fields: fields{
				ID:   "",
				Name: "NTT Communications",
				Slug: "ntt",
			},
			wantErr: false,
		},
		{
			name: "SuccessIDJunk",
			fields: fields{
				ID:   "asdfasdfasdf",
				Name: "NTT Communications",
				Slug: "ntt",
			},
			wantErr: false,
		},
		{
			name: "SuccessIDWrongFormat",
			fields: fields{
				ID:   "597b5f690ae9400e96ec779d05694728",
				Name: "NTT Communications",
				Slug: "ntt",
			},
			wantErr: false,
		},
		{
			name: "SuccessIDSet",
			fields: fields{
				ID:   "074f8bc5-2c98-4cac-b6f1-ac86af497192",
				Name: "NTT Communications",
				Slug: "ntt",
			},
			wantErr: false,
		},
		{
			name: "FailNameNotSet",
			fields: fields{
				ID:   "ad0e6bec-a26c-4657-b9d1-30676a932c23",
				Name: "",
				Slug: "ntt",
			},
			wantErr: true,
		},
	}

	t.Parallel()

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			testProvider := &Provider{
				ID:   testCase.fields.ID,
				Name: testCase.fields.Name,
				Slug: testCase.fields.Slug,
			}

			err := testProvider.BeforeCreate(nil)
			if (err != nil) != testCase.wantErr {
				t.Errorf("BeforeCreate() error = %v, wantErr %v", err, testCase.wantErr)
			}

			_, err = uuid.Parse(testProvider.ID)
			if err != nil {
				t.Fatalf("error parsing uuid: %s", err.Error())
			}
		})
	}
}

func TestProvider_BeforeCreateNilReceiver(t *testing.T) {
	t.Parallel()

	t.Run("NilReceiver", func(t *testing.T) {
		t.Parallel()

		testProvider := (*Provider)(nil)

		err := testProvider.BeforeCreate(nil)
		if err == nil {
			t.Errorf("BeforeCreate() nil receiver did not return error, error = %v", err)
		}
	})
}
