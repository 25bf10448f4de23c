package skillsimv1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// SimulatorServiceClient is the client API for SimulatorService
type SimulatorServiceClient interface {
	SearchArmor(ctx context.Context, in *SearchArmorRequest, opts ...grpc.CallOption) (*SearchArmorResponse, error)
	SearchWeapons(ctx context.Context, in *SearchWeaponsRequest, opts ...grpc.CallOption) (*SearchWeaponsResponse, error)
	Search(ctx context.Context, in *SearchRequest, opts ...grpc.CallOption) (*SearchResponse, error)
	ListWeaponNames(ctx context.Context, in *ListWeaponNamesRequest, opts ...grpc.CallOption) (*ListWeaponNamesResponse, error)
	ListSkills(ctx context.Context, in *ListSkillsRequest, opts ...grpc.CallOption) (*ListSkillsResponse, error)
}

type simulatorServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewSimulatorServiceClient creates a client over cc. Calls always use the
// JSON codec.
func NewSimulatorServiceClient(cc grpc.ClientConnInterface) SimulatorServiceClient {
	return &simulatorServiceClient{cc}
}

func (c *simulatorServiceClient) SearchArmor(ctx context.Context, in *SearchArmorRequest, opts ...grpc.CallOption) (*SearchArmorResponse, error) {
	out := new(SearchArmorResponse)
	if err := c.cc.Invoke(ctx, SimulatorService_SearchArmor_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *simulatorServiceClient) SearchWeapons(ctx context.Context, in *SearchWeaponsRequest, opts ...grpc.CallOption) (*SearchWeaponsResponse, error) {
	out := new(SearchWeaponsResponse)
	if err := c.cc.Invoke(ctx, SimulatorService_SearchWeapons_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *simulatorServiceClient) Search(ctx context.Context, in *SearchRequest, opts ...grpc.CallOption) (*SearchResponse, error) {
	out := new(SearchResponse)
	if err := c.cc.Invoke(ctx, SimulatorService_Search_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *simulatorServiceClient) ListWeaponNames(ctx context.Context, in *ListWeaponNamesRequest, opts ...grpc.CallOption) (*ListWeaponNamesResponse, error) {
	out := new(ListWeaponNamesResponse)
	if err := c.cc.Invoke(ctx, SimulatorService_ListWeaponNames_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *simulatorServiceClient) ListSkills(ctx context.Context, in *ListSkillsRequest, opts ...grpc.CallOption) (*ListSkillsResponse, error) {
	out := new(ListSkillsResponse)
	if err := c.cc.Invoke(ctx, SimulatorService_ListSkills_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func callOptions(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
}
