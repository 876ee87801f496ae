package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/chainsafe/ckbridge-starter/pkg/bridge"
	"github.com/chainsafe/ckbridge-starter/pkg/bridge/service/mocks"
)

func TestLogService_Success(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	svc := mocks.NewService(t)
	svc.EXPECT().
		Transfer(mock.Anything, mock.Anything).
		Return(&bridge.TransferResponse{BlockIndex: "3"}, nil).
		Once()

	resp, err := NewLog(svc, zap.New(core)).Transfer(context.Background(), &bridge.TransferRequest{
		Asset: "eth", To: recipientID, Amount: "1",
	})
	require.NoError(t, err)
	assert.Equal(t, "3", resp.BlockIndex)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "Transfer started", entries[0].Message)
	assert.Equal(t, "Transfer completed", entries[1].Message)
	assert.Equal(t, "3", entries[1].ContextMap()["block_index"])
}

func TestLogService_Failure(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	svc := mocks.NewService(t)
	svc.EXPECT().
		Approve(mock.Anything, mock.Anything).
		Return(nil, errors.New("rejected")).
		Once()

	_, err := NewLog(svc, zap.New(core)).Approve(context.Background(), &bridge.ApproveRequest{
		Asset: "eth", Caller: callerID, Amount: "1",
	})
	require.Error(t, err)

	failed := logs.FilterMessage("Approve failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, zap.ErrorLevel, failed[0].Level)
}
