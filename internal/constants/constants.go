package constants

const KBoltzmann float64 = 1.380649e-23
const ElectronCharge = 1.602176634e-19                   // C
const ElectronMass float64 = 9.1093837139e-31            // [kg]
const FreeSpacePermittivityE0 float64 = 8.8541878188e-12 // [m^-3 kg^{-1} s^4 A^2]
const LightSpeed float64 = 2.99792458e8                  // [m/s]
const ElectronRestEnergyEV float64 = 510998.95           // m_e c^2 / e [eV]
