package handlers

import (
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
)

type BigInt struct {
	*big.Int
}

func (b *BigInt) UnmarshalJSON(data []byte) error {
	if b.Int == nil {
		b.Int = new(big.Int)
	}

	s := strings.Trim(string(data), "\"")
	_, ok := b.SetString(s, 10)
	if !ok {
		return fmt.Errorf("failed to parse big.Int from %s", s)
	}

	return nil
}

func (b *BigInt) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(b.String())), nil
}

func bigInts(values []*BigInt) []*big.Int {
	ints := make([]*big.Int, len(values))
	for i, v := range values {
		ints[i] = v.Int
	}
	return ints
}

func JSONError(w http.ResponseWriter, err error, code int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	type errorResponse struct {
		Code   int    `json:"code"`
		Reason string `json:"reason"`
	}
	resp := errorResponse{
		Reason: err.Error(),
		Code:   code,
	}
	_ = json.NewEncoder(w).Encode(resp)
}

func JSONResponse(w http.ResponseWriter, body interface{}, code int) {
	data, err := json.Marshal(body)
	if err != nil {
		JSONError(w, fmt.Errorf("failed encoding response: %s", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(data)
}

// Protocols maps chain ids to the protocol lines served on them.
type Protocols map[uint64]map[string]Protocol

// route is the protocol line addressed by a request.
type route struct {
	chainID  uint64
	protocol string
	line     Protocol
}

// lookup resolves the chainId and protocol route variables into a protocol line
// and the status code to answer with if it does not exist.
func (p Protocols) lookup(vars map[string]string) (*route, int, error) {
	chainID, ok := new(big.Int).SetString(vars["chainId"], 10)
	if !ok || !chainID.IsUint64() {
		return nil, http.StatusBadRequest, fmt.Errorf("field 'chainId' invalid")
	}

	lines, ok := p[chainID.Uint64()]
	if !ok {
		return nil, http.StatusNotFound, fmt.Errorf("chain %d not supported", chainID.Uint64())
	}

	line, ok := lines[vars["protocol"]]
	if !ok {
		return nil, http.StatusNotFound, fmt.Errorf("protocol '%s' not supported on chain %d", vars["protocol"], chainID.Uint64())
	}
	return &route{chainID: chainID.Uint64(), protocol: vars["protocol"], line: line}, http.StatusOK, nil
}

func (p Protocols) fromRequest(r *http.Request) (*route, int, error) {
	return p.lookup(mux.Vars(r))
}
