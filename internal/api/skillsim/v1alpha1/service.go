package skillsimv1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Full method names of SimulatorService
const (
	SimulatorService_SearchArmor_FullMethodName     = "/skillsim.api.v1alpha1.SimulatorService/SearchArmor"
	SimulatorService_SearchWeapons_FullMethodName   = "/skillsim.api.v1alpha1.SimulatorService/SearchWeapons"
	SimulatorService_Search_FullMethodName          = "/skillsim.api.v1alpha1.SimulatorService/Search"
	SimulatorService_ListWeaponNames_FullMethodName = "/skillsim.api.v1alpha1.SimulatorService/ListWeaponNames"
	SimulatorService_ListSkills_FullMethodName      = "/skillsim.api.v1alpha1.SimulatorService/ListSkills"
)

// SimulatorServiceServer is the server API for SimulatorService.
// Implementations must embed UnimplementedSimulatorServiceServer.
type SimulatorServiceServer interface {
	// SearchArmor finds armor combinations meeting skill requirements
	SearchArmor(context.Context, *SearchArmorRequest) (*SearchArmorResponse, error)
	// SearchWeapons lists weapons by name, or by type, element and skills
	SearchWeapons(context.Context, *SearchWeaponsRequest) (*SearchWeaponsResponse, error)
	// Search runs both searches and pairs armor sets with weapons
	Search(context.Context, *SearchRequest) (*SearchResponse, error)
	// ListWeaponNames lists weapon names for a type and/or element
	ListWeaponNames(context.Context, *ListWeaponNamesRequest) (*ListWeaponNamesResponse, error)
	// ListSkills lists the armor or weapon skill master list
	ListSkills(context.Context, *ListSkillsRequest) (*ListSkillsResponse, error)
	mustEmbedUnimplementedSimulatorServiceServer()
}

// UnimplementedSimulatorServiceServer returns Unimplemented for every method
type UnimplementedSimulatorServiceServer struct{}

func (UnimplementedSimulatorServiceServer) SearchArmor(context.Context, *SearchArmorRequest) (*SearchArmorResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SearchArmor not implemented")
}

func (UnimplementedSimulatorServiceServer) SearchWeapons(context.Context, *SearchWeaponsRequest) (*SearchWeaponsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SearchWeapons not implemented")
}

func (UnimplementedSimulatorServiceServer) Search(context.Context, *SearchRequest) (*SearchResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Search not implemented")
}

func (UnimplementedSimulatorServiceServer) ListWeaponNames(context.Context, *ListWeaponNamesRequest) (*ListWeaponNamesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListWeaponNames not implemented")
}

func (UnimplementedSimulatorServiceServer) ListSkills(context.Context, *ListSkillsRequest) (*ListSkillsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListSkills not implemented")
}

func (UnimplementedSimulatorServiceServer) mustEmbedUnimplementedSimulatorServiceServer() {}

// RegisterSimulatorServiceServer registers srv on s
func RegisterSimulatorServiceServer(s grpc.ServiceRegistrar, srv SimulatorServiceServer) {
	s.RegisterService(&SimulatorService_ServiceDesc, srv)
}

func _SimulatorService_SearchArmor_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SearchArmorRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SimulatorServiceServer).SearchArmor(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SimulatorService_SearchArmor_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SimulatorServiceServer).SearchArmor(ctx, req.(*SearchArmorRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SimulatorService_SearchWeapons_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SearchWeaponsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SimulatorServiceServer).SearchWeapons(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SimulatorService_SearchWeapons_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SimulatorServiceServer).SearchWeapons(ctx, req.(*SearchWeaponsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SimulatorService_Search_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SearchRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SimulatorServiceServer).Search(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SimulatorService_Search_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SimulatorServiceServer).Search(ctx, req.(*SearchRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SimulatorService_ListWeaponNames_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListWeaponNamesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SimulatorServiceServer).ListWeaponNames(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SimulatorService_ListWeaponNames_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SimulatorServiceServer).ListWeaponNames(ctx, req.(*ListWeaponNamesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SimulatorService_ListSkills_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListSkillsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SimulatorServiceServer).ListSkills(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SimulatorService_ListSkills_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SimulatorServiceServer).ListSkills(ctx, req.(*ListSkillsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// SimulatorService_ServiceDesc is the grpc.ServiceDesc for SimulatorService
var SimulatorService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "skillsim.api.v1alpha1.SimulatorService",
	HandlerType: (*SimulatorServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SearchArmor",
			Handler:    _SimulatorService_SearchArmor_Handler,
		},
		{
			MethodName: "SearchWeapons",
			Handler:    _SimulatorService_SearchWeapons_Handler,
		},
		{
			MethodName: "Search",
			Handler:    _SimulatorService_Search_Handler,
		},
		{
			MethodName: "ListWeaponNames",
			Handler:    _SimulatorService_ListWeaponNames_Handler,
		},
		{
			MethodName: "ListSkills",
			Handler:    _SimulatorService_ListSkills_Handler,
		},
	},
	Streams: []grpc.StreamDesc{},
}
