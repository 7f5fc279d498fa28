// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package gateway

import (
	"github.com/ugorji/go/codec"
	"github.com/xmidt-org/xraydemo/compute"
)

const (
	contentTypeHeader = "Content-Type"
	jsonContentType   = "application/json"
)

// jsonHandle is the ugorji JSON handle used for every response body
var jsonHandle = &codec.JsonHandle{}

// EncodeResponse renders a unit response as the JSON body returned to clients
func EncodeResponse(r compute.Response) ([]byte, error) {
	var body []byte
	if err := codec.NewEncoderBytes(&body, jsonHandle).Encode(r); err != nil {
		return nil, err
	}

	return body, nil
}
