package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	httpclient "github.com/piresc/transferflow/internal/pkg/http"
	"github.com/piresc/transferflow/internal/pkg/models"
)

// FetchRecipientCurrencyID asks core banking for the currency of a recipient account. An
// unknown account or one without currency yields an empty id.
func (g *PaymentGW) FetchRecipientCurrencyID(ctx context.Context, accountNumber string) (string, error) {
	var resp models.RecipientAccountResponse
	err := g.coreBanking.GetJSON(ctx, "/accounts/"+url.PathEscape(accountNumber), &resp)

	var se *httpclient.StatusError
	if errors.As(err, &se) && se.StatusCode == http.StatusNotFound {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to fetch recipient account: %w", err)
	}
	if resp.Currency == nil {
		return "", nil
	}
	return resp.Currency.ID, nil
}
